package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/trainings/cours/dto"
	"formationpro_backend/internals/features/trainings/cours/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/helpers/storage"
	"formationpro_backend/internals/repository"
)

const uploadDir = "cours"

var validate = validator.New()

type CoursController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.CoursModel]
}

func NewCoursController(db *gorm.DB) *CoursController {
	return &CoursController{DB: db, repo: repository.New[model.CoursModel]()}
}

func (ctrl *CoursController) GetAll(c *fiber.Ctx) error {
	cours, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des cours", cours)
}

func (ctrl *CoursController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	cours, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le cours n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Cours trouvé", cours)
}

func (ctrl *CoursController) Create(c *fiber.Ctx) error {
	var req dto.CreateCoursRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// l'image du cours est optionnelle
	imageURL := ""
	if fh, ferr := c.FormFile("imageUrl"); ferr == nil && fh != nil {
		url, serr := storage.Save(fh, uploadDir)
		if serr != nil {
			return helper.FromError(c, serr)
		}
		imageURL = url
	}

	cours := req.ToModel(imageURL)
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &cours); err != nil {
		if imageURL != "" {
			_ = storage.Remove(imageURL)
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Un cours avec ce libellé existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cours créé !", cours)
}

func (ctrl *CoursController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le cours n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	var req dto.UpdateCoursRequest
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

	cours, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, updates)
	if err != nil {
		if newImageURL != "" {
			_ = storage.Remove(newImageURL)
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Un cours avec ce libellé existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Cours mis à jour !", cours)
}

func (ctrl *CoursController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le cours n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
