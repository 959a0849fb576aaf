package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/sessions/session_formations/dto"
	"formationpro_backend/internals/features/sessions/session_formations/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/repository"
)

// SessionParticipantController : une session_formation ne porte qu'un seul
// participant (contrainte unique), le doublon sort en 409.
type SessionParticipantController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.SessionParticipantModel]
}

func NewSessionParticipantController(db *gorm.DB) *SessionParticipantController {
	return &SessionParticipantController{DB: db, repo: repository.New[model.SessionParticipantModel]()}
}

func (ctrl *SessionParticipantController) GetAll(c *fiber.Ctx) error {
	rows, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des participants", rows)
}

func (ctrl *SessionParticipantController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	row, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le participant n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Participant trouvé", row)
}

func (ctrl *SessionParticipantController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &row); err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Cette session-formation a déjà un participant !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Participant inscrit !", row)
}

func (ctrl *SessionParticipantController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.UpdateSessionParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, req.ToUpdates())
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le participant n'existe pas !")
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Cette session-formation a déjà un participant !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Participant mis à jour !", row)
}

func (ctrl *SessionParticipantController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le participant n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
