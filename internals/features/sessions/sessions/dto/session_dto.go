package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/sessions/sessions/model"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return datatypes.Date{}, apperr.Wrap(apperr.KindValidation, "Date invalide (format attendu AAAA-MM-JJ)", err)
	}
	return datatypes.Date(t), nil
}

type CreateSessionRequest struct {
	Libelle         string `form:"libelle" validate:"required,max=255"`
	DateDebut       string `form:"dateDebut" validate:"required,datetime=2006-01-02"`
	DateFin         string `form:"dateFin" validate:"required,datetime=2006-01-02"`
	TypeValidite    string `form:"typeValidite" validate:"required,max=50"`
	DelaiValidite   int    `form:"delaiValidite" validate:"min=0"`
	DateValidite    string `form:"dateValidite" validate:"required,datetime=2006-01-02"`
	NbreMaxEtudiant int64  `form:"nbreMaxEtudiant" validate:"required,min=1"`
	Status          *int   `form:"status" validate:"omitempty,min=0"`
}

func (r CreateSessionRequest) ToModel() (model.SessionModel, error) {
	debut, err := parseDate(r.DateDebut)
	if err != nil {
		return model.SessionModel{}, err
	}
	fin, err := parseDate(r.DateFin)
	if err != nil {
		return model.SessionModel{}, err
	}
	validite, err := parseDate(r.DateValidite)
	if err != nil {
		return model.SessionModel{}, err
	}
	if time.Time(fin).Before(time.Time(debut)) {
		return model.SessionModel{}, apperr.New(apperr.KindValidation, "La date de fin doit être postérieure à la date de début !")
	}

	m := model.SessionModel{
		Libelle:         strings.TrimSpace(r.Libelle),
		DateDebut:       debut,
		DateFin:         fin,
		TypeValidite:    r.TypeValidite,
		DelaiValidite:   r.DelaiValidite,
		DateValidite:    validite,
		NbreMaxEtudiant: r.NbreMaxEtudiant,
		Status:          1,
		CreatedAt:       time.Now(),
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m, nil
}

type UpdateSessionRequest struct {
	Libelle         *string `form:"libelle" validate:"omitempty,max=255"`
	DateDebut       *string `form:"dateDebut" validate:"omitempty,datetime=2006-01-02"`
	DateFin         *string `form:"dateFin" validate:"omitempty,datetime=2006-01-02"`
	TypeValidite    *string `form:"typeValidite" validate:"omitempty,max=50"`
	DelaiValidite   *int    `form:"delaiValidite" validate:"omitempty,min=0"`
	DateValidite    *string `form:"dateValidite" validate:"omitempty,datetime=2006-01-02"`
	NbreMaxEtudiant *int64  `form:"nbreMaxEtudiant" validate:"omitempty,min=1"`
	Status          *int    `form:"status" validate:"omitempty,min=0"`
}

// ToUpdates construit le patch. L'ordre des dates n'est contrôlé que si les
// deux bornes sont fournies dans la même requête.
func (r UpdateSessionRequest) ToUpdates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if r.DateDebut != nil && r.DateFin != nil {
		debut, err := time.Parse(dateLayout, *r.DateDebut)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "Date invalide (format attendu AAAA-MM-JJ)", err)
		}
		fin, err := time.Parse(dateLayout, *r.DateFin)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "Date invalide (format attendu AAAA-MM-JJ)", err)
		}
		if fin.Before(debut) {
			return nil, apperr.New(apperr.KindValidation, "La date de fin doit être postérieure à la date de début !")
		}
	}

	if r.Libelle != nil {
		updates["libelle"] = strings.TrimSpace(*r.Libelle)
	}
	if r.DateDebut != nil {
		d, err := parseDate(*r.DateDebut)
		if err != nil {
			return nil, err
		}
		updates["date_debut"] = d
	}
	if r.DateFin != nil {
		d, err := parseDate(*r.DateFin)
		if err != nil {
			return nil, err
		}
		updates["date_fin"] = d
	}
	if r.TypeValidite != nil {
		updates["type_validite"] = *r.TypeValidite
	}
	if r.DelaiValidite != nil {
		updates["delai_validite"] = *r.DelaiValidite
	}
	if r.DateValidite != nil {
		d, err := parseDate(*r.DateValidite)
		if err != nil {
			return nil, err
		}
		updates["date_validite"] = d
	}
	if r.NbreMaxEtudiant != nil {
		updates["nbre_max_etudiant"] = *r.NbreMaxEtudiant
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	return updates, nil
}
