package model

import (
	"time"

	formateurModel "formationpro_backend/internals/features/trainings/formateurs/model"
)

type FormationModel struct {
	ID          uint       `json:"id" gorm:"column:id;primaryKey"`
	Libelle     string     `json:"libelle" gorm:"column:libelle;type:text;not null;uniqueIndex:formation_libelle_unique"`
	Description string     `json:"description" gorm:"column:description;type:text"`
	ImageURL    string     `json:"imageUrl" gorm:"column:image_url;type:text"`
	Status      int        `json:"status" gorm:"column:status;not null;default:1"`
	FormateurID uint       `json:"formateurID" gorm:"column:formateur_id;not null;index:formation_formateurid_index"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`

	Formateur *formateurModel.FormateurModel `json:"-" gorm:"foreignKey:FormateurID"`
}

func (FormationModel) TableName() string {
	return "formation"
}
