package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/companies/entreprises/dto"
	"formationpro_backend/internals/features/companies/entreprises/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/repository"
)

type AgentEntrepriseController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.AgentEntrepriseModel]
}

func NewAgentEntrepriseController(db *gorm.DB) *AgentEntrepriseController {
	return &AgentEntrepriseController{DB: db, repo: repository.New[model.AgentEntrepriseModel]()}
}

func (ctrl *AgentEntrepriseController) GetAll(c *fiber.Ctx) error {
	rows, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des agents", rows)
}

func (ctrl *AgentEntrepriseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	row, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "L'agent n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Agent trouvé", row)
}

func (ctrl *AgentEntrepriseController) Create(c *fiber.Ctx) error {
	var req dto.CreateAgentEntrepriseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &row); err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Un agent avec ce téléphone ou cet email existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Agent créé !", row)
}

func (ctrl *AgentEntrepriseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.UpdateAgentEntrepriseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, req.ToUpdates())
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "L'agent n'existe pas !")
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Un agent avec ce téléphone ou cet email existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Agent mis à jour !", row)
}

func (ctrl *AgentEntrepriseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "L'agent n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
