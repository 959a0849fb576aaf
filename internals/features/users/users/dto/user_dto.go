package dto

import (
	"strings"
	"time"

	"formationpro_backend/internals/features/users/users/model"
)

type CreateUserRequest struct {
	Username string `form:"username" validate:"required,min=1"`
	Nom      string `form:"nom" validate:"required,min=1"`
	Prenom   string `form:"prenom" validate:"required,min=1"`
	Phone    string `form:"phone" validate:"required,min=1"`
	Email    string `form:"email" validate:"required,email"`
	RoleID   uint   `form:"roleID" validate:"required,min=1"`
	Status   *int   `form:"status" validate:"omitempty,min=0"`
}

func (r CreateUserRequest) ToModel() model.UserModel {
	m := model.UserModel{
		Username:  strings.TrimSpace(r.Username),
		Nom:       r.Nom,
		Prenom:    r.Prenom,
		Phone:     strings.TrimSpace(r.Phone),
		Email:     strings.TrimSpace(r.Email),
		RoleID:    r.RoleID,
		Status:    1,
		CreatedAt: time.Now(),
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

type UpdateUserRequest struct {
	Username *string `form:"username" validate:"omitempty,min=1"`
	Nom      *string `form:"nom" validate:"omitempty,min=1"`
	Prenom   *string `form:"prenom" validate:"omitempty,min=1"`
	Phone    *string `form:"phone" validate:"omitempty,min=1"`
	Email    *string `form:"email" validate:"omitempty,email"`
	RoleID   *uint   `form:"roleID" validate:"omitempty,min=1"`
	Status   *int    `form:"status" validate:"omitempty,min=0"`
}

func (r UpdateUserRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Username != nil {
		updates["username"] = strings.TrimSpace(*r.Username)
	}
	if r.Nom != nil {
		updates["nom"] = *r.Nom
	}
	if r.Prenom != nil {
		updates["prenom"] = *r.Prenom
	}
	if r.Phone != nil {
		updates["phone"] = strings.TrimSpace(*r.Phone)
	}
	if r.Email != nil {
		updates["email"] = strings.TrimSpace(*r.Email)
	}
	if r.RoleID != nil {
		updates["role_id"] = *r.RoleID
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	return updates
}
