package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/trainings/cours/dto"
	"formationpro_backend/internals/features/trainings/cours/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/repository"
)

type TagController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.TagModel]
}

func NewTagController(db *gorm.DB) *TagController {
	return &TagController{DB: db, repo: repository.New[model.TagModel]()}
}

func (ctrl *TagController) GetAll(c *fiber.Ctx) error {
	tags, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des tags", tags)
}

func (ctrl *TagController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	tag, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le tag n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Tag trouvé", tag)
}

func (ctrl *TagController) Create(c *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tag := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &tag); err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Un tag avec ce libellé existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tag créé !", tag)
}

func (ctrl *TagController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.UpdateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tag, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, req.ToUpdates())
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le tag n'existe pas !")
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Un tag avec ce libellé existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Tag mis à jour !", tag)
}

func (ctrl *TagController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le tag n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
