package model

import "time"

type EntrepriseModel struct {
	ID               uint       `json:"id" gorm:"column:id;primaryKey"`
	Libelle          string     `json:"libelle" gorm:"column:libelle;type:text;not null;uniqueIndex:entreprise_libelle_unique"`
	Reference        string     `json:"reference" gorm:"column:reference;type:text;not null"`
	NomResponsable   string     `json:"nom_responsable" gorm:"column:nom_responsable;type:text;not null"`
	EmailResponsable *string    `json:"email_responsable,omitempty" gorm:"column:email_responsable;type:text"`
	PhoneResponsable *string    `json:"phone_responsable,omitempty" gorm:"column:phone_responsable;type:text"`
	CreatedAt        time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`
}

func (EntrepriseModel) TableName() string {
	return "entreprise"
}
