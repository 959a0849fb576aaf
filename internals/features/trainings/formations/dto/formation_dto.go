package dto

import (
	"strings"
	"time"

	"formationpro_backend/internals/features/trainings/formations/model"
)

// Create (multipart form, l'image passe par le champ fichier "imageUrl")
type CreateFormationRequest struct {
	Libelle     string `form:"libelle" validate:"required,max=255"`
	Description string `form:"description" validate:"required"`
	Status      *int   `form:"status" validate:"omitempty,min=0"`
	FormateurID uint   `form:"formateurID" validate:"required,min=1"`
}

func (r CreateFormationRequest) ToModel(imageURL string) model.FormationModel {
	m := model.FormationModel{
		Libelle:     strings.TrimSpace(r.Libelle),
		Description: r.Description,
		ImageURL:    imageURL,
		Status:      1,
		FormateurID: r.FormateurID,
		CreatedAt:   time.Now(),
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

// Update (partial : seuls les champs fournis sont écrits)
type UpdateFormationRequest struct {
	Libelle     *string `form:"libelle" validate:"omitempty,max=255"`
	Description *string `form:"description" validate:"omitempty"`
	Status      *int    `form:"status" validate:"omitempty,min=0"`
	FormateurID *uint   `form:"formateurID" validate:"omitempty,min=1"`
}

func (r UpdateFormationRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Libelle != nil {
		updates["libelle"] = strings.TrimSpace(*r.Libelle)
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.FormateurID != nil {
		updates["formateur_id"] = *r.FormateurID
	}
	return updates
}
