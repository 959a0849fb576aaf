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

// TagCoursController gère les lignes de liaison tag <-> cours.
type TagCoursController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.TagCoursModel]
}

func NewTagCoursController(db *gorm.DB) *TagCoursController {
	return &TagCoursController{DB: db, repo: repository.New[model.TagCoursModel]()}
}

func (ctrl *TagCoursController) GetAll(c *fiber.Ctx) error {
	links, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des liaisons tag/cours", links)
}

func (ctrl *TagCoursController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	link, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La liaison n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liaison trouvée", link)
}

func (ctrl *TagCoursController) Create(c *fiber.Ctx) error {
	var req dto.CreateTagCoursRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	link := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &link); err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Tag ou cours référencé introuvable !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Liaison créée !", link)
}

func (ctrl *TagCoursController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.UpdateTagCoursRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	link, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, req.ToUpdates())
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La liaison n'existe pas !")
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Tag ou cours référencé introuvable !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Liaison mise à jour !", link)
}

func (ctrl *TagCoursController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La liaison n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
