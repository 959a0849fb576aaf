package model

import (
	"time"

	"gorm.io/datatypes"
)

type SessionModel struct {
	ID              uint           `json:"id" gorm:"column:id;primaryKey"`
	Libelle         string         `json:"libelle" gorm:"column:libelle;type:text;not null"`
	DateDebut       datatypes.Date `json:"dateDebut" gorm:"column:date_debut;not null"`
	DateFin         datatypes.Date `json:"dateFin" gorm:"column:date_fin;not null"`
	TypeValidite    string         `json:"typeValidite" gorm:"column:type_validite;type:text;not null"`
	DelaiValidite   int            `json:"delaiValidite" gorm:"column:delai_validite;not null"`
	DateValidite    datatypes.Date `json:"dateValidite" gorm:"column:date_validite;not null"`
	NbreMaxEtudiant int64          `json:"nbreMaxEtudiant" gorm:"column:nbre_max_etudiant;not null"`
	Status          int            `json:"status" gorm:"column:status;not null;default:1"`
	CreatedAt       time.Time      `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt       *time.Time     `json:"updatedAt,omitempty" gorm:"column:updated_at"`
}

func (SessionModel) TableName() string {
	return "session"
}
