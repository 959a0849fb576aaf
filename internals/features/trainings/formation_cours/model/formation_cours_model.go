package model

import (
	"time"

	coursModel "formationpro_backend/internals/features/trainings/cours/model"
	formateurModel "formationpro_backend/internals/features/trainings/formateurs/model"
	formationModel "formationpro_backend/internals/features/trainings/formations/model"
)

// FormationCoursModel rattache un cours à une formation sous un formateur.
type FormationCoursModel struct {
	ID          uint       `json:"id" gorm:"column:id;primaryKey"`
	CoursID     uint       `json:"coursID" gorm:"column:cours_id;not null;index:formation_cours_coursid_index"`
	FormationID uint       `json:"formationID" gorm:"column:formation_id;not null;index:formation_cours_formationid_index"`
	FormateurID uint       `json:"formateurID" gorm:"column:formateur_id;not null;index:formation_cours_formateurid_index"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`

	Cours     *coursModel.CoursModel         `json:"-" gorm:"foreignKey:CoursID"`
	Formation *formationModel.FormationModel `json:"-" gorm:"foreignKey:FormationID"`
	Formateur *formateurModel.FormateurModel `json:"-" gorm:"foreignKey:FormateurID"`
}

func (FormationCoursModel) TableName() string {
	return "formation_cours"
}
