package dto

import (
	"strings"
	"time"

	"formationpro_backend/internals/features/trainings/cours/model"
)

// Catégories et tags : simples libellés uniques.

type CreateCategorieRequest struct {
	Libelle string `form:"libelle" validate:"required,max=255"`
}

func (r CreateCategorieRequest) ToModel() model.CategorieModel {
	return model.CategorieModel{
		Libelle:   strings.TrimSpace(r.Libelle),
		CreatedAt: time.Now(),
	}
}

type UpdateCategorieRequest struct {
	Libelle *string `form:"libelle" validate:"omitempty,max=255"`
}

func (r UpdateCategorieRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Libelle != nil {
		updates["libelle"] = strings.TrimSpace(*r.Libelle)
	}
	return updates
}

type CreateTagRequest struct {
	Libelle string `form:"libelle" validate:"required,max=255"`
}

func (r CreateTagRequest) ToModel() model.TagModel {
	return model.TagModel{
		Libelle:   strings.TrimSpace(r.Libelle),
		CreatedAt: time.Now(),
	}
}

type UpdateTagRequest struct {
	Libelle *string `form:"libelle" validate:"omitempty,max=255"`
}

func (r UpdateTagRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Libelle != nil {
		updates["libelle"] = strings.TrimSpace(*r.Libelle)
	}
	return updates
}

type CreateTagCoursRequest struct {
	CoursID uint `form:"coursID" validate:"required,min=1"`
	TagID   uint `form:"tagID" validate:"required,min=1"`
}

func (r CreateTagCoursRequest) ToModel() model.TagCoursModel {
	return model.TagCoursModel{
		CoursID:   r.CoursID,
		TagID:     r.TagID,
		CreatedAt: time.Now(),
	}
}

type UpdateTagCoursRequest struct {
	CoursID *uint `form:"coursID" validate:"omitempty,min=1"`
	TagID   *uint `form:"tagID" validate:"omitempty,min=1"`
}

func (r UpdateTagCoursRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.CoursID != nil {
		updates["cours_id"] = *r.CoursID
	}
	if r.TagID != nil {
		updates["tag_id"] = *r.TagID
	}
	return updates
}
