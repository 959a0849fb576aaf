package model

import "time"

type UserModel struct {
	ID        uint       `json:"id" gorm:"column:id;primaryKey"`
	Username  string     `json:"username" gorm:"column:username;type:text;not null;uniqueIndex:user_username_unique"`
	Nom       string     `json:"nom" gorm:"column:nom;type:text;not null"`
	Prenom    string     `json:"prenom" gorm:"column:prenom;type:text;not null"`
	Phone     string     `json:"phone" gorm:"column:phone;type:text;not null;uniqueIndex:user_phone_unique"`
	Email     string     `json:"email" gorm:"column:email;type:text;not null;uniqueIndex:user_email_unique"`
	RoleID    uint       `json:"roleID" gorm:"column:role_id;not null;index:user_roleid_index"`
	Status    int        `json:"status" gorm:"column:status;not null;default:1"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`

	Role *RoleModel `json:"-" gorm:"foreignKey:RoleID"`
}

func (UserModel) TableName() string {
	return "user"
}
