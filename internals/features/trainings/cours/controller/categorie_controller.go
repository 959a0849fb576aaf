package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/trainings/cours/dto"
	"formationpro_backend/internals/features/trainings/cours/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/repository"
)

type CategorieController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.CategorieModel]
}

func NewCategorieController(db *gorm.DB) *CategorieController {
	return &CategorieController{DB: db, repo: repository.New[model.CategorieModel]()}
}

func (ctrl *CategorieController) GetAll(c *fiber.Ctx) error {
	categories, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des catégories", categories)
}

func (ctrl *CategorieController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	categorie, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La catégorie n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Catégorie trouvée", categorie)
}

func (ctrl *CategorieController) Create(c *fiber.Ctx) error {
	var req dto.CreateCategorieRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	categorie := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &categorie); err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Une catégorie avec ce libellé existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Catégorie créée !", categorie)
}

func (ctrl *CategorieController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.UpdateCategorieRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	categorie, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, req.ToUpdates())
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La catégorie n'existe pas !")
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Une catégorie avec ce libellé existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Catégorie mise à jour !", categorie)
}

func (ctrl *CategorieController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La catégorie n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
