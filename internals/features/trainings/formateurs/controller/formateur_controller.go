package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/trainings/formateurs/dto"
	"formationpro_backend/internals/features/trainings/formateurs/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/repository"
)

var validate = validator.New()

type FormateurController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.FormateurModel]
}

func NewFormateurController(db *gorm.DB) *FormateurController {
	return &FormateurController{DB: db, repo: repository.New[model.FormateurModel]()}
}

func (ctrl *FormateurController) GetAll(c *fiber.Ctx) error {
	formateurs, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des formateurs", formateurs)
}

func (ctrl *FormateurController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	formateur, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le formateur n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Formateur trouvé", formateur)
}

func (ctrl *FormateurController) Create(c *fiber.Ctx) error {
	var req dto.CreateFormateurRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	formateur := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &formateur); err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Un formateur avec ce téléphone ou cet email existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Formateur créé !", formateur)
}

func (ctrl *FormateurController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.UpdateFormateurRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	formateur, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, req.ToUpdates())
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le formateur n'existe pas !")
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Un formateur avec ce téléphone ou cet email existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Formateur mis à jour !", formateur)
}

func (ctrl *FormateurController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le formateur n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
