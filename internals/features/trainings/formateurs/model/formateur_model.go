package model

import "time"

// FormateurModel : les formateurs référencés par les formations, les cours
// assignés et les fiches de présence.
type FormateurModel struct {
	ID        uint       `json:"id" gorm:"column:id;primaryKey"`
	Nom       string     `json:"nom" gorm:"column:nom;type:text;not null"`
	Prenom    string     `json:"prenom" gorm:"column:prenom;type:text;not null"`
	Telephone string     `json:"telephone" gorm:"column:telephone;type:text;not null;uniqueIndex:formateur_telephone_unique"`
	Email     *string    `json:"email,omitempty" gorm:"column:email;type:text;uniqueIndex:formateur_email_unique"`
	Status    int        `json:"status" gorm:"column:status;not null;default:1"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`
}

func (FormateurModel) TableName() string {
	return "formateur"
}
