package dto

import (
	"time"

	"formationpro_backend/internals/features/users/users/model"
)

type CreateRoleRequest struct {
	Libelle string `form:"libelle" validate:"required,min=1"`
}

func (r CreateRoleRequest) ToModel() model.RoleModel {
	return model.RoleModel{
		Libelle:   r.Libelle,
		CreatedAt: time.Now(),
	}
}

type UpdateRoleRequest struct {
	Libelle *string `form:"libelle" validate:"omitempty,min=1"`
}

func (r UpdateRoleRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Libelle != nil {
		updates["libelle"] = *r.Libelle
	}
	return updates
}
