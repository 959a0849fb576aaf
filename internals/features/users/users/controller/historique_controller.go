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

// HistoriqueController : journal append-only, pas de route de mise à jour.
type HistoriqueController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.HistoriqueModel]
}

func NewHistoriqueController(db *gorm.DB) *HistoriqueController {
	return &HistoriqueController{DB: db, repo: repository.New[model.HistoriqueModel]()}
}

func (ctrl *HistoriqueController) GetAll(c *fiber.Ctx) error {
	historiques, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des historiques", historiques)
}

func (ctrl *HistoriqueController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	historique, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "L'historique n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Historique trouvé", historique)
}

func (ctrl *HistoriqueController) Create(c *fiber.Ctx) error {
	var req dto.CreateHistoriqueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	historique := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &historique); err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Utilisateur référencé introuvable !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Historique créé !", historique)
}

func (ctrl *HistoriqueController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "L'historique n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Historique supprimé !", nil)
}
