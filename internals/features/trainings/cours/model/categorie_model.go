package model

import "time"

type CategorieModel struct {
	ID        uint       `json:"id" gorm:"column:id;primaryKey"`
	Libelle   string     `json:"libelle" gorm:"column:libelle;type:text;not null;uniqueIndex:categorie_libelle_unique"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`
}

func (CategorieModel) TableName() string {
	return "categorie"
}
