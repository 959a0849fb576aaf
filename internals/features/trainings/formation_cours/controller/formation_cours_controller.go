package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/trainings/formation_cours/dto"
	"formationpro_backend/internals/features/trainings/formation_cours/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/repository"
)

var validate = validator.New()

// FormationCoursController expose les cours rattachés à une formation,
// routé sous /formations/:formation_id/courses.
type FormationCoursController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.FormationCoursModel]
}

func NewFormationCoursController(db *gorm.DB) *FormationCoursController {
	return &FormationCoursController{DB: db, repo: repository.New[model.FormationCoursModel]()}
}

func (ctrl *FormationCoursController) GetAllByFormation(c *fiber.Ctx) error {
	formationID, err := helper.ParseIDParam(c, "formation_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	links, err := ctrl.repo.ListWhere(c.UserContext(), ctrl.DB, "formation_id = ?", formationID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Cours de la formation", links)
}

func (ctrl *FormationCoursController) GetByID(c *fiber.Ctx) error {
	formationID, err := helper.ParseIDParam(c, "formation_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	link, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Aucun cours n'a été ajouté !")
		}
		return helper.FromError(c, err)
	}
	if link.FormationID != formationID {
		return helper.Error(c, fiber.StatusNotFound, "Aucun cours n'a été ajouté !")
	}
	return helper.Success(c, "Cours de la formation", link)
}

func (ctrl *FormationCoursController) Create(c *fiber.Ctx) error {
	formationID, err := helper.ParseIDParam(c, "formation_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.CreateFormationCoursRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	link := req.ToModel(formationID)
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &link); err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Formation, cours ou formateur référencé introuvable !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cours rattaché à la formation !", link)
}

func (ctrl *FormationCoursController) Update(c *fiber.Ctx) error {
	formationID, err := helper.ParseIDParam(c, "formation_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	existing, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Aucun cours n'a été ajouté !")
		}
		return helper.FromError(c, err)
	}
	if existing.FormationID != formationID {
		return helper.Error(c, fiber.StatusNotFound, "Aucun cours n'a été ajouté !")
	}

	var req dto.UpdateFormationCoursRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	link, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, req.ToUpdates())
	if err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Cours ou formateur référencé introuvable !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Liaison mise à jour !", link)
}

func (ctrl *FormationCoursController) Delete(c *fiber.Ctx) error {
	formationID, err := helper.ParseIDParam(c, "formation_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	existing, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Aucun cours n'a été ajouté !")
		}
		return helper.FromError(c, err)
	}
	if existing.FormationID != formationID {
		return helper.Error(c, fiber.StatusNotFound, "Aucun cours n'a été ajouté !")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
