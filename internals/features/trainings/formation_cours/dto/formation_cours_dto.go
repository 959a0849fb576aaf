package dto

import (
	"time"

	"formationpro_backend/internals/features/trainings/formation_cours/model"
)

type CreateFormationCoursRequest struct {
	CoursID     uint `form:"coursID" validate:"required,min=1"`
	FormateurID uint `form:"formateurID" validate:"required,min=1"`
}

func (r CreateFormationCoursRequest) ToModel(formationID uint) model.FormationCoursModel {
	return model.FormationCoursModel{
		CoursID:     r.CoursID,
		FormationID: formationID,
		FormateurID: r.FormateurID,
		CreatedAt:   time.Now(),
	}
}

type UpdateFormationCoursRequest struct {
	CoursID     *uint `form:"coursID" validate:"omitempty,min=1"`
	FormateurID *uint `form:"formateurID" validate:"omitempty,min=1"`
}

func (r UpdateFormationCoursRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.CoursID != nil {
		updates["cours_id"] = *r.CoursID
	}
	if r.FormateurID != nil {
		updates["formateur_id"] = *r.FormateurID
	}
	return updates
}
