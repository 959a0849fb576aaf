package model

import (
	"time"

	sessionModel "formationpro_backend/internals/features/sessions/sessions/model"
	formationModel "formationpro_backend/internals/features/trainings/formations/model"
)

// SessionFormationModel porte les conditions tarifaires (groupe/perso)
// d'une formation programmée sur une session.
type SessionFormationModel struct {
	ID          uint `json:"id" gorm:"column:id;primaryKey"`
	SessionID   uint `json:"sessionID" gorm:"column:session_id;not null;index:session_formation_sessionid_index"`
	FormationID uint `json:"formationID" gorm:"column:formation_id;not null;index:session_formation_formationid_index"`

	IsGroupe              bool `json:"isGroupe" gorm:"column:is_groupe;not null"`
	PrixGroupe            int  `json:"prixGroupe" gorm:"column:prix_groupe;not null"`
	IsPerso               bool `json:"isPerso" gorm:"column:is_perso;not null"`
	PrixPerso             int  `json:"prixPerso" gorm:"column:prix_perso;not null"`
	IsReductionGroupe     bool `json:"isReductionGroupe" gorm:"column:is_reduction_groupe;not null"`
	PourcentageGroupe     int  `json:"pourcentageGroupe" gorm:"column:pourcentage_groupe;not null"`
	ValeurReductionGroupe int  `json:"valeurReductionGroupe" gorm:"column:valeur_reduction_groupe;not null"`
	IsReductionPerso      bool `json:"isReductionPerso" gorm:"column:is_reduction_perso;not null"`
	PourcentagePerso      int  `json:"pourcentagePerso" gorm:"column:pourcentage_perso;not null"`
	ValeurReductionPerso  int  `json:"valeurReductionPerso" gorm:"column:valeur_reduction_perso;not null"`

	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`

	Session   *sessionModel.SessionModel     `json:"-" gorm:"foreignKey:SessionID"`
	Formation *formationModel.FormationModel `json:"-" gorm:"foreignKey:FormationID"`
}

func (SessionFormationModel) TableName() string {
	return "session_formation"
}
