package dto

import (
	"time"

	"gorm.io/datatypes"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/attendance/fiches/model"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return datatypes.Date{}, apperr.Wrap(apperr.KindValidation, "Date invalide (format attendu AAAA-MM-JJ)", err)
	}
	return datatypes.Date(t), nil
}

type CreateFichePresenceRequest struct {
	AgentEntrepriseID  uint   `form:"agentEntrepriseID" validate:"required,min=1"`
	SessionFormationID uint   `form:"sessionFormationID" validate:"required,min=1"`
	FormateurID        uint   `form:"formateurID" validate:"required,min=1"`
	DateDebut          string `form:"dateDebut" validate:"required,datetime=2006-01-02"`
	DateFin            string `form:"dateFin" validate:"required,datetime=2006-01-02"`
}

func (r CreateFichePresenceRequest) ToModel(signatureURL string) (model.FichePresenceModel, error) {
	debut, err := parseDate(r.DateDebut)
	if err != nil {
		return model.FichePresenceModel{}, err
	}
	fin, err := parseDate(r.DateFin)
	if err != nil {
		return model.FichePresenceModel{}, err
	}
	if time.Time(fin).Before(time.Time(debut)) {
		return model.FichePresenceModel{}, apperr.New(apperr.KindValidation, "La date de fin doit être postérieure à la date de début !")
	}

	return model.FichePresenceModel{
		AgentEntrepriseID:     r.AgentEntrepriseID,
		SessionFormationID:    r.SessionFormationID,
		FormateurID:           r.FormateurID,
		DateDebut:             debut,
		DateFin:               fin,
		SignatureElectronique: signatureURL,
		CreatedAt:             time.Now(),
	}, nil
}

type UpdateFichePresenceRequest struct {
	AgentEntrepriseID  *uint   `form:"agentEntrepriseID" validate:"omitempty,min=1"`
	SessionFormationID *uint   `form:"sessionFormationID" validate:"omitempty,min=1"`
	FormateurID        *uint   `form:"formateurID" validate:"omitempty,min=1"`
	DateDebut          *string `form:"dateDebut" validate:"omitempty,datetime=2006-01-02"`
	DateFin            *string `form:"dateFin" validate:"omitempty,datetime=2006-01-02"`
}

func (r UpdateFichePresenceRequest) ToUpdates() (map[string]interface{}, error) {
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

	if r.AgentEntrepriseID != nil {
		updates["agent_entreprise_id"] = *r.AgentEntrepriseID
	}
	if r.SessionFormationID != nil {
		updates["session_formation_id"] = *r.SessionFormationID
	}
	if r.FormateurID != nil {
		updates["formateur_id"] = *r.FormateurID
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
	return updates, nil
}
