package model

import "time"

type RoleModel struct {
	ID        uint       `json:"id" gorm:"column:id;primaryKey"`
	Libelle   string     `json:"libelle" gorm:"column:libelle;type:text;not null"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`
}

func (RoleModel) TableName() string {
	return "role"
}
