package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/trainings/formations/dto"
	"formationpro_backend/internals/features/trainings/formations/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/helpers/storage"
	"formationpro_backend/internals/repository"
)

const uploadDir = "formations"

var validate = validator.New()

type FormationController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.FormationModel]
}

func NewFormationController(db *gorm.DB) *FormationController {
	return &FormationController{DB: db, repo: repository.New[model.FormationModel]()}
}

func (ctrl *FormationController) GetAll(c *fiber.Ctx) error {
	formations, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des formations", formations)
}

func (ctrl *FormationController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	formation, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La formation n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Formation trouvée", formation)
}

func (ctrl *FormationController) Create(c *fiber.Ctx) error {
	var req dto.CreateFormationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fh, err := c.FormFile("imageUrl")
	if err != nil || fh == nil {
		return helper.Error(c, fiber.StatusBadRequest, "L'image de la formation est requise !")
	}

	imageURL, err := storage.Save(fh, uploadDir)
	if err != nil {
		return helper.FromError(c, err)
	}

	formation := req.ToModel(imageURL)
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &formation); err != nil {
		// le commit a échoué : on retire le fichier qui vient d'être écrit
		_ = storage.Remove(imageURL)
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Une formation avec ce libellé existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Formation créée !", formation)
}

func (ctrl *FormationController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	// 404 avant toute mutation
	if _, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La formation n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	var req dto.UpdateFormationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.ToUpdates()

	newImageURL := ""
	if fh, ferr := c.FormFile("imageUrl"); ferr == nil && fh != nil {
		url, serr := storage.Save(fh, uploadDir)
		if serr != nil {
			return helper.FromError(c, serr)
		}
		updates["image_url"] = url
		newImageURL = url
	}

	formation, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, updates)
	if err != nil {
		if newImageURL != "" {
			_ = storage.Remove(newImageURL)
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Une formation avec ce libellé existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Formation mise à jour !", formation)
}

func (ctrl *FormationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La formation n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	// pas de cascade : les formation_cours dépendants et le fichier image
	// restent en place
	return c.SendStatus(fiber.StatusNoContent)
}
