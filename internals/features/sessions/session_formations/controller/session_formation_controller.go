package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/sessions/session_formations/dto"
	"formationpro_backend/internals/features/sessions/session_formations/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/repository"
)

var validate = validator.New()

type SessionFormationController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.SessionFormationModel]
}

func NewSessionFormationController(db *gorm.DB) *SessionFormationController {
	return &SessionFormationController{DB: db, repo: repository.New[model.SessionFormationModel]()}
}

func (ctrl *SessionFormationController) GetAll(c *fiber.Ctx) error {
	rows, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des session-formations", rows)
}

func (ctrl *SessionFormationController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	row, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La session-formation n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Session-formation trouvée", row)
}

func (ctrl *SessionFormationController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionFormationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &row); err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Session ou formation référencée introuvable !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Session-formation créée !", row)
}

func (ctrl *SessionFormationController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.UpdateSessionFormationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, req.ToUpdates())
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La session-formation n'existe pas !")
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Session ou formation référencée introuvable !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Session-formation mise à jour !", row)
}

func (ctrl *SessionFormationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La session-formation n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
