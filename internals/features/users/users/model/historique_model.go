package model

import "time"

// HistoriqueModel est le journal d'audit : append-only, pas de mise à jour.
type HistoriqueModel struct {
	ID            uint       `json:"id" gorm:"column:id;primaryKey"`
	UserID        uint       `json:"userID" gorm:"column:user_id;not null;index:historique_userid_index"`
	Description   string     `json:"description" gorm:"column:description;type:text;not null"`
	TypeOperation string     `json:"typeOperation" gorm:"column:type_operation;type:text;not null"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`

	User *UserModel `json:"-" gorm:"foreignKey:UserID"`
}

func (HistoriqueModel) TableName() string {
	return "historique"
}
