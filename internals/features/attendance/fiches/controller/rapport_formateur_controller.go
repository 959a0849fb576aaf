package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/attendance/fiches/dto"
	"formationpro_backend/internals/features/attendance/fiches/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/helpers/storage"
	"formationpro_backend/internals/repository"
)

type RapportFormateurController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.RapportFormateurModel]
}

func NewRapportFormateurController(db *gorm.DB) *RapportFormateurController {
	return &RapportFormateurController{DB: db, repo: repository.New[model.RapportFormateurModel]()}
}

func (ctrl *RapportFormateurController) GetAll(c *fiber.Ctx) error {
	rapports, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des rapports formateur", rapports)
}

func (ctrl *RapportFormateurController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	rapport, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le rapport n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Rapport trouvé", rapport)
}

func (ctrl *RapportFormateurController) Create(c *fiber.Ctx) error {
	var req dto.CreateRapportFormateurRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// signature optionnelle sur les rapports
	var signatureURL *string
	if fh, ferr := c.FormFile("signatureElectronique"); ferr == nil && fh != nil {
		url, serr := storage.Save(fh, signatureDir)
		if serr != nil {
			return helper.FromError(c, serr)
		}
		signatureURL = &url
	}

	rapport := req.ToModel(signatureURL)
	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &rapport); err != nil {
		if signatureURL != nil {
			_ = storage.Remove(*signatureURL)
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Session ou session-formation référencée introuvable !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Rapport créé !", rapport)
}

func (ctrl *RapportFormateurController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le rapport n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	var req dto.UpdateRapportFormateurRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.ToUpdates()

	newSignatureURL := ""
	if fh, ferr := c.FormFile("signatureElectronique"); ferr == nil && fh != nil {
		url, serr := storage.Save(fh, signatureDir)
		if serr != nil {
			return helper.FromError(c, serr)
		}
		updates["signature_electronique"] = url
		newSignatureURL = url
	}

	rapport, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, updates)
	if err != nil {
		if newSignatureURL != "" {
			_ = storage.Remove(newSignatureURL)
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Session ou session-formation référencée introuvable !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Rapport mis à jour !", rapport)
}

func (ctrl *RapportFormateurController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Le rapport n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
