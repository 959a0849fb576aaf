package model

import "time"

type TagModel struct {
	ID        uint       `json:"id" gorm:"column:id;primaryKey"`
	Libelle   string     `json:"libelle" gorm:"column:libelle;type:text;not null;uniqueIndex:tag_libelle_unique"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`
}

func (TagModel) TableName() string {
	return "tag"
}
