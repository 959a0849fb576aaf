package dto

import (
	"time"

	"formationpro_backend/internals/features/companies/entreprises/model"
)

type CreateAgentEntrepriseRequest struct {
	EntrepriseID uint    `form:"entrepriseID" validate:"required,min=1"`
	Nom          string  `form:"nom" validate:"required,min=1"`
	Prenom       string  `form:"prenom" validate:"required,min=1"`
	Telephone    string  `form:"telephone" validate:"required,min=1"`
	Email        *string `form:"email" validate:"omitempty,email"`
}

func (r CreateAgentEntrepriseRequest) ToModel() model.AgentEntrepriseModel {
	return model.AgentEntrepriseModel{
		EntrepriseID: r.EntrepriseID,
		Nom:          r.Nom,
		Prenom:       r.Prenom,
		Telephone:    r.Telephone,
		Email:        r.Email,
		CreatedAt:    time.Now(),
	}
}

type UpdateAgentEntrepriseRequest struct {
	EntrepriseID *uint   `form:"entrepriseID" validate:"omitempty,min=1"`
	Nom          *string `form:"nom" validate:"omitempty,min=1"`
	Prenom       *string `form:"prenom" validate:"omitempty,min=1"`
	Telephone    *string `form:"telephone" validate:"omitempty,min=1"`
	Email        *string `form:"email" validate:"omitempty,email"`
}

func (r UpdateAgentEntrepriseRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.EntrepriseID != nil {
		updates["entreprise_id"] = *r.EntrepriseID
	}
	if r.Nom != nil {
		updates["nom"] = *r.Nom
	}
	if r.Prenom != nil {
		updates["prenom"] = *r.Prenom
	}
	if r.Telephone != nil {
		updates["telephone"] = *r.Telephone
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	return updates
}
