package dto

import (
	"strings"
	"time"

	"formationpro_backend/internals/features/trainings/formateurs/model"
)

type CreateFormateurRequest struct {
	Nom       string  `form:"nom" validate:"required,max=255"`
	Prenom    string  `form:"prenom" validate:"required,max=255"`
	Telephone string  `form:"telephone" validate:"required,max=30"`
	Email     *string `form:"email" validate:"omitempty,email"`
	Status    *int    `form:"status" validate:"omitempty,min=0"`
}

func (r CreateFormateurRequest) ToModel() model.FormateurModel {
	m := model.FormateurModel{
		Nom:       strings.TrimSpace(r.Nom),
		Prenom:    strings.TrimSpace(r.Prenom),
		Telephone: strings.TrimSpace(r.Telephone),
		Email:     r.Email,
		Status:    1,
		CreatedAt: time.Now(),
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

type UpdateFormateurRequest struct {
	Nom       *string `form:"nom" validate:"omitempty,max=255"`
	Prenom    *string `form:"prenom" validate:"omitempty,max=255"`
	Telephone *string `form:"telephone" validate:"omitempty,max=30"`
	Email     *string `form:"email" validate:"omitempty,email"`
	Status    *int    `form:"status" validate:"omitempty,min=0"`
}

func (r UpdateFormateurRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Nom != nil {
		updates["nom"] = strings.TrimSpace(*r.Nom)
	}
	if r.Prenom != nil {
		updates["prenom"] = strings.TrimSpace(*r.Prenom)
	}
	if r.Telephone != nil {
		updates["telephone"] = strings.TrimSpace(*r.Telephone)
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	return updates
}
