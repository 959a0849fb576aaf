package dto

import (
	"time"

	"formationpro_backend/internals/features/users/users/model"
)

// Pas de DTO de mise à jour : l'historique est un journal append-only.
type CreateHistoriqueRequest struct {
	UserID        uint   `form:"userID" validate:"required,min=1"`
	Description   string `form:"description" validate:"required,min=1"`
	TypeOperation string `form:"typeOperation" validate:"required,min=1"`
}

func (r CreateHistoriqueRequest) ToModel() model.HistoriqueModel {
	return model.HistoriqueModel{
		UserID:        r.UserID,
		Description:   r.Description,
		TypeOperation: r.TypeOperation,
		CreatedAt:     time.Now(),
	}
}
