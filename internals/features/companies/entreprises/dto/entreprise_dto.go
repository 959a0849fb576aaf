package dto

import (
	"time"

	"formationpro_backend/internals/features/companies/entreprises/model"
)

type CreateEntrepriseRequest struct {
	Libelle          string  `form:"libelle" validate:"required,min=1"`
	Reference        string  `form:"reference" validate:"required,min=1"`
	NomResponsable   string  `form:"nomResponsable" validate:"required,min=1"`
	EmailResponsable *string `form:"emailResponsable" validate:"omitempty,email"`
	PhoneResponsable *string `form:"phoneResponsable"`
}

func (r CreateEntrepriseRequest) ToModel() model.EntrepriseModel {
	return model.EntrepriseModel{
		Libelle:          r.Libelle,
		Reference:        r.Reference,
		NomResponsable:   r.NomResponsable,
		EmailResponsable: r.EmailResponsable,
		PhoneResponsable: r.PhoneResponsable,
		CreatedAt:        time.Now(),
	}
}

type UpdateEntrepriseRequest struct {
	Libelle          *string `form:"libelle" validate:"omitempty,min=1"`
	Reference        *string `form:"reference" validate:"omitempty,min=1"`
	NomResponsable   *string `form:"nomResponsable" validate:"omitempty,min=1"`
	EmailResponsable *string `form:"emailResponsable" validate:"omitempty,email"`
	PhoneResponsable *string `form:"phoneResponsable"`
}

func (r UpdateEntrepriseRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Libelle != nil {
		updates["libelle"] = *r.Libelle
	}
	if r.Reference != nil {
		updates["reference"] = *r.Reference
	}
	if r.NomResponsable != nil {
		updates["nom_responsable"] = *r.NomResponsable
	}
	if r.EmailResponsable != nil {
		updates["email_responsable"] = *r.EmailResponsable
	}
	if r.PhoneResponsable != nil {
		updates["phone_responsable"] = *r.PhoneResponsable
	}
	return updates
}
