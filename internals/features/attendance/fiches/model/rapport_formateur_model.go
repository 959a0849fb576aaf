package model

import (
	"time"

	sessionFormationModel "formationpro_backend/internals/features/sessions/session_formations/model"
	sessionModel "formationpro_backend/internals/features/sessions/sessions/model"
)

// RapportFormateurModel : rapport d'activité rédigé par un formateur sur une
// session_formation, signature électronique optionnelle.
type RapportFormateurModel struct {
	ID                    uint       `json:"id" gorm:"column:id;primaryKey"`
	SessionFormationID    uint       `json:"sessionFormationID" gorm:"column:session_formation_id;not null;index:rapport_formateur_sessionformationid_index"`
	FormateurID           uint       `json:"formateurID" gorm:"column:formateur_id;not null;index:rapport_formateur_formateurid_index"`
	SessionID             uint       `json:"sessionID" gorm:"column:session_id;not null;index:rapport_formateur_sessionid_index"`
	Description           string     `json:"description" gorm:"column:description;type:text;not null"`
	SignatureElectronique *string    `json:"signatureElectronique,omitempty" gorm:"column:signature_electronique;type:text"`
	CreatedAt             time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt             *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`

	Session          *sessionModel.SessionModel                   `json:"-" gorm:"foreignKey:SessionID"`
	SessionFormation *sessionFormationModel.SessionFormationModel `json:"-" gorm:"foreignKey:SessionFormationID"`
}

func (RapportFormateurModel) TableName() string {
	return "rapport_formateur"
}
