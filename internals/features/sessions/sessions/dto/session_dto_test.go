package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formationpro_backend/internals/apperr"
)

func validCreateRequest() CreateSessionRequest {
	return CreateSessionRequest{
		Libelle:         "Session printemps 2026",
		DateDebut:       "2026-03-02",
		DateFin:         "2026-03-06",
		TypeValidite:    "mois",
		DelaiValidite:   12,
		DateValidite:    "2027-03-06",
		NbreMaxEtudiant: 15,
	}
}

func TestCreateSessionToModel(t *testing.T) {
	m, err := validCreateRequest().ToModel()
	require.NoError(t, err)

	assert.Equal(t, "Session printemps 2026", m.Libelle)
	assert.Equal(t, 1, m.Status)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), time.Time(m.DateDebut))
}

func TestCreateSessionEndBeforeStartIsRejected(t *testing.T) {
	req := validCreateRequest()
	req.DateDebut = "2026-03-06"
	req.DateFin = "2026-03-02"

	_, err := req.ToModel()
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreateSessionBadDateFormatIsRejected(t *testing.T) {
	req := validCreateRequest()
	req.DateDebut = "02/03/2026"

	_, err := req.ToModel()
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateSessionChecksDateOrderOnlyWhenBothProvided(t *testing.T) {
	debut := "2026-03-06"
	fin := "2026-03-02"

	_, err := UpdateSessionRequest{DateDebut: &debut, DateFin: &fin}.ToUpdates()
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// une seule borne fournie : pas de contrôle d'ordre possible
	updates, err := UpdateSessionRequest{DateFin: &fin}.ToUpdates()
	require.NoError(t, err)
	assert.Contains(t, updates, "date_fin")
	assert.NotContains(t, updates, "date_debut")
}

func TestUpdateSessionSparsePatch(t *testing.T) {
	libelle := "  Session automne  "
	updates, err := UpdateSessionRequest{Libelle: &libelle}.ToUpdates()
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"libelle": "Session automne"}, updates)
}
