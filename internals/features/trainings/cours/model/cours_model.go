package model

import "time"

type CoursModel struct {
	ID          uint       `json:"id" gorm:"column:id;primaryKey"`
	Libelle     string     `json:"libelle" gorm:"column:libelle;type:text;not null;uniqueIndex:cours_libelle_unique"`
	CategorieID uint       `json:"categorieID" gorm:"column:categorie_id;not null;index:cours_categorieid_index"`
	Description string     `json:"description" gorm:"column:description;type:text"`
	ImageURL    string     `json:"imageUrl" gorm:"column:image_url;type:text"`
	Status      int        `json:"status" gorm:"column:status;not null;default:1"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`
}

func (CoursModel) TableName() string {
	return "cours"
}
