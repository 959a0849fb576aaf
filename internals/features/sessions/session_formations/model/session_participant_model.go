package model

import (
	"time"

	entrepriseModel "formationpro_backend/internals/features/companies/entreprises/model"
	sessionModel "formationpro_backend/internals/features/sessions/sessions/model"
)

// SessionParticipantModel : une session_formation a au plus un participant
// (contrainte unique sur session_formation_id).
type SessionParticipantModel struct {
	ID                 uint       `json:"id" gorm:"column:id;primaryKey"`
	AgentEntrepriseID  uint       `json:"agentEntrepriseID" gorm:"column:agent_entreprise_id;not null;index:session_participant_agententrepriseid_index"`
	SessionID          uint       `json:"sessionID" gorm:"column:session_id;not null;index:session_participant_sessionid_index"`
	SessionFormationID uint       `json:"sessionFormationID" gorm:"column:session_formation_id;not null;uniqueIndex:session_participant_sessionformationid_unique"`
	IsGroupe           bool       `json:"isGroupe" gorm:"column:is_groupe;not null"`
	IsPerso            bool       `json:"isPerso" gorm:"column:is_perso;not null"`
	CreatedAt          time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`

	Agent            *entrepriseModel.AgentEntrepriseModel `json:"-" gorm:"foreignKey:AgentEntrepriseID"`
	Session          *sessionModel.SessionModel            `json:"-" gorm:"foreignKey:SessionID"`
	SessionFormation *SessionFormationModel                `json:"-" gorm:"foreignKey:SessionFormationID"`
}

func (SessionParticipantModel) TableName() string {
	return "session_participant"
}
