package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/users/users/dto"
	"formationpro_backend/internals/features/users/users/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/repository"
)

var validate = validator.New()

type UserController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.UserModel]
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, repo: repository.New[model.UserModel]()}
}

func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	users, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des utilisateurs", users)
}

func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	user, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "L'utilisateur n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Utilisateur trouvé", user)
}

func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user := req.ToModel()
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &user); err != nil {
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Un utilisateur avec ce username, ce téléphone ou cet email existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Utilisateur créé !", user)
}

func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, req.ToUpdates())
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "L'utilisateur n'existe pas !")
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Un utilisateur avec ce username, ce téléphone ou cet email existe déjà !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Utilisateur mis à jour !", user)
}

func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "L'utilisateur n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Utilisateur supprimé !", nil)
}
