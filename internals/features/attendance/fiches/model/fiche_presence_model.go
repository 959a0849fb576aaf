package model

import (
	"time"

	"gorm.io/datatypes"

	entrepriseModel "formationpro_backend/internals/features/companies/entreprises/model"
	sessionFormationModel "formationpro_backend/internals/features/sessions/session_formations/model"
	formateurModel "formationpro_backend/internals/features/trainings/formateurs/model"
)

// FichePresenceModel : fiche de présence signée électroniquement par le
// formateur ; la signature est stockée comme média et référencée par URL.
type FichePresenceModel struct {
	ID                    uint           `json:"id" gorm:"column:id;primaryKey"`
	AgentEntrepriseID     uint           `json:"agentEntrepriseID" gorm:"column:agent_entreprise_id;not null;index:fiche_presence_agententrepriseid_index"`
	SessionFormationID    uint           `json:"sessionFormationID" gorm:"column:session_formation_id;not null;index:fiche_presence_sessionformationid_index"`
	FormateurID           uint           `json:"formateurID" gorm:"column:formateur_id;not null;index:fiche_presence_formateurid_index"`
	DateDebut             datatypes.Date `json:"dateDebut" gorm:"column:date_debut;not null"`
	DateFin               datatypes.Date `json:"dateFin" gorm:"column:date_fin;not null"`
	SignatureElectronique string         `json:"signatureElectronique" gorm:"column:signature_electronique;type:text;not null"`
	CreatedAt             time.Time      `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt             *time.Time     `json:"updatedAt,omitempty" gorm:"column:updated_at"`

	Agent            *entrepriseModel.AgentEntrepriseModel         `json:"-" gorm:"foreignKey:AgentEntrepriseID"`
	SessionFormation *sessionFormationModel.SessionFormationModel  `json:"-" gorm:"foreignKey:SessionFormationID"`
	Formateur        *formateurModel.FormateurModel                `json:"-" gorm:"foreignKey:FormateurID"`
}

func (FichePresenceModel) TableName() string {
	return "fiche_presence"
}
