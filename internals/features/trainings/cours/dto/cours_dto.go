package dto

import (
	"strings"
	"time"

	"formationpro_backend/internals/features/trainings/cours/model"
)

type CreateCoursRequest struct {
	Libelle     string `form:"libelle" validate:"required,max=255"`
	CategorieID uint   `form:"categorieID" validate:"required,min=1"`
	Description string `form:"description" validate:"omitempty"`
	Status      *int   `form:"status" validate:"omitempty,min=0"`
}

func (r CreateCoursRequest) ToModel(imageURL string) model.CoursModel {
	m := model.CoursModel{
		Libelle:     strings.TrimSpace(r.Libelle),
		CategorieID: r.CategorieID,
		Description: r.Description,
		ImageURL:    imageURL,
		Status:      1,
		CreatedAt:   time.Now(),
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

type UpdateCoursRequest struct {
	Libelle     *string `form:"libelle" validate:"omitempty,max=255"`
	CategorieID *uint   `form:"categorieID" validate:"omitempty,min=1"`
	Description *string `form:"description" validate:"omitempty"`
	Status      *int    `form:"status" validate:"omitempty,min=0"`
}

func (r UpdateCoursRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Libelle != nil {
		updates["libelle"] = strings.TrimSpace(*r.Libelle)
	}
	if r.CategorieID != nil {
		updates["categorie_id"] = *r.CategorieID
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	return updates
}
