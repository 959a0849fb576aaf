package model

import "time"

// AgentEntrepriseModel : un salarié d'une entreprise cliente inscrit aux
// sessions. Téléphone et email sont uniques sur toute la table.
type AgentEntrepriseModel struct {
	ID           uint       `json:"id" gorm:"column:id;primaryKey"`
	EntrepriseID uint       `json:"entrepriseID" gorm:"column:entreprise_id;not null;index:agent_entreprise_entrepriseid_index"`
	Nom          string     `json:"nom" gorm:"column:nom;type:text;not null"`
	Prenom       string     `json:"prenom" gorm:"column:prenom;type:text;not null"`
	Telephone    string     `json:"telephone" gorm:"column:telephone;type:text;not null;uniqueIndex:agent_entreprise_telephone_unique"`
	Email        *string    `json:"email,omitempty" gorm:"column:email;type:text;uniqueIndex:agent_entreprise_email_unique"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`

	Entreprise *EntrepriseModel `json:"-" gorm:"foreignKey:EntrepriseID"`
}

func (AgentEntrepriseModel) TableName() string {
	return "agent_entreprise"
}
