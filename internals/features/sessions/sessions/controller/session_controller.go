package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/sessions/sessions/dto"
	"formationpro_backend/internals/features/sessions/sessions/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/repository"
)

var validate = validator.New()

type SessionController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.SessionModel]
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, repo: repository.New[model.SessionModel]()}
}

func (ctrl *SessionController) GetAll(c *fiber.Ctx) error {
	sessions, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des sessions", sessions)
}

func (ctrl *SessionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	session, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La session n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Session trouvée", session)
}

func (ctrl *SessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	session, err := req.ToModel()
	if err != nil {
		return helper.FromError(c, err)
	}

	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &session); err != nil {
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Session créée !", session)
}

func (ctrl *SessionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates, err := req.ToUpdates()
	if err != nil {
		return helper.FromError(c, err)
	}

	session, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, updates)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La session n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Session mise à jour !", session)
}

func (ctrl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La session n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
