package dto

import (
	"time"

	"formationpro_backend/internals/features/sessions/session_formations/model"
)

type CreateSessionParticipantRequest struct {
	AgentEntrepriseID  uint  `form:"agentEntrepriseID" validate:"required,min=1"`
	SessionID          uint  `form:"sessionID" validate:"required,min=1"`
	SessionFormationID uint  `form:"sessionFormationID" validate:"required,min=1"`
	IsGroupe           *bool `form:"isGroupe" validate:"required"`
	IsPerso            *bool `form:"isPerso" validate:"required"`
}

func (r CreateSessionParticipantRequest) ToModel() model.SessionParticipantModel {
	return model.SessionParticipantModel{
		AgentEntrepriseID:  r.AgentEntrepriseID,
		SessionID:          r.SessionID,
		SessionFormationID: r.SessionFormationID,
		IsGroupe:           *r.IsGroupe,
		IsPerso:            *r.IsPerso,
		CreatedAt:          time.Now(),
	}
}

type UpdateSessionParticipantRequest struct {
	AgentEntrepriseID  *uint `form:"agentEntrepriseID" validate:"omitempty,min=1"`
	SessionID          *uint `form:"sessionID" validate:"omitempty,min=1"`
	SessionFormationID *uint `form:"sessionFormationID" validate:"omitempty,min=1"`
	IsGroupe           *bool `form:"isGroupe"`
	IsPerso            *bool `form:"isPerso"`
}

func (r UpdateSessionParticipantRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.AgentEntrepriseID != nil {
		updates["agent_entreprise_id"] = *r.AgentEntrepriseID
	}
	if r.SessionID != nil {
		updates["session_id"] = *r.SessionID
	}
	if r.SessionFormationID != nil {
		updates["session_formation_id"] = *r.SessionFormationID
	}
	if r.IsGroupe != nil {
		updates["is_groupe"] = *r.IsGroupe
	}
	if r.IsPerso != nil {
		updates["is_perso"] = *r.IsPerso
	}
	return updates
}
