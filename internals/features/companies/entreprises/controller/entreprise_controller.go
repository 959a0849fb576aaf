package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/companies/entreprises/dto"
	"formationpro_backend/internals/features/companies/entreprises/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/repository"
)

var validate = validator.New()

type EntrepriseController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.EntrepriseModel]
}

func NewEntrepriseController(db *gorm.DB) *EntrepriseController {
	return &EntrepriseController{DB: db, repo: repository.New[model.EntrepriseModel]()}
}

func (ctrl *EntrepriseController) GetAll(c *fiber.Ctx) error {
	rows, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des entreprises", rows)
}

func (ctrl *EntrepriseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	row, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "L'entreprise n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Entreprise trouvée", row)
}

func (ctrl *EntrepriseController) Create(c *fiber.Ctx) error {
	var req dto.CreateEntrepriseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &row); err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Une entreprise avec ce libellé existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Entreprise créée !", row)
}

func (ctrl *EntrepriseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.UpdateEntrepriseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, req.ToUpdates())
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "L'entreprise n'existe pas !")
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Une entreprise avec ce libellé existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Entreprise mise à jour !", row)
}

func (ctrl *EntrepriseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "L'entreprise n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
