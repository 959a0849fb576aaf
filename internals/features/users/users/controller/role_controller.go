package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/users/users/dto"
	"formationpro_backend/internals/features/users/users/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/repository"
)

type RoleController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.RoleModel]
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db, repo: repository.New[model.RoleModel]()}
}

func (ctrl *RoleController) GetAll(c *fiber.Ctx) error {
	roles, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des rôles", roles)
}

func (ctrl *RoleController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	role, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le rôle n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Rôle trouvé", role)
}

func (ctrl *RoleController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	role := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &role); err != nil {
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Rôle créé !", role)
}

func (ctrl *RoleController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	role, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, req.ToUpdates())
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le rôle n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Rôle mis à jour !", role)
}

func (ctrl *RoleController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le rôle n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Rôle supprimé !", nil)
}
