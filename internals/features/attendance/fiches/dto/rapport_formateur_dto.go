package dto

import (
	"time"

	"formationpro_backend/internals/features/attendance/fiches/model"
)

type CreateRapportFormateurRequest struct {
	SessionFormationID uint   `form:"sessionFormationID" validate:"required,min=1"`
	FormateurID        uint   `form:"formateurID" validate:"required,min=1"`
	SessionID          uint   `form:"sessionID" validate:"required,min=1"`
	Description        string `form:"description" validate:"required,min=1"`
}

func (r CreateRapportFormateurRequest) ToModel(signatureURL *string) model.RapportFormateurModel {
	return model.RapportFormateurModel{
		SessionFormationID:    r.SessionFormationID,
		FormateurID:           r.FormateurID,
		SessionID:             r.SessionID,
		Description:           r.Description,
		SignatureElectronique: signatureURL,
		CreatedAt:             time.Now(),
	}
}

type UpdateRapportFormateurRequest struct {
	SessionFormationID *uint   `form:"sessionFormationID" validate:"omitempty,min=1"`
	FormateurID        *uint   `form:"formateurID" validate:"omitempty,min=1"`
	SessionID          *uint   `form:"sessionID" validate:"omitempty,min=1"`
	Description        *string `form:"description" validate:"omitempty,min=1"`
}

func (r UpdateRapportFormateurRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.SessionFormationID != nil {
		updates["session_formation_id"] = *r.SessionFormationID
	}
	if r.FormateurID != nil {
		updates["formateur_id"] = *r.FormateurID
	}
	if r.SessionID != nil {
		updates["session_id"] = *r.SessionID
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	return updates
}
