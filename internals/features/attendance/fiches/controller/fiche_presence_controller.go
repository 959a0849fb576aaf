package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/features/attendance/fiches/dto"
	"formationpro_backend/internals/features/attendance/fiches/model"
	helper "formationpro_backend/internals/helpers"
	"formationpro_backend/internals/helpers/storage"
	"formationpro_backend/internals/repository"
)

const signatureDir = "signatures"

var validate = validator.New()

type FichePresenceController struct {
	DB   *gorm.DB
	repo *repository.Repository[model.FichePresenceModel]
}

func NewFichePresenceController(db *gorm.DB) *FichePresenceController {
	return &FichePresenceController{DB: db, repo: repository.New[model.FichePresenceModel]()}
}

func (ctrl *FichePresenceController) GetAll(c *fiber.Ctx) error {
	fiches, err := ctrl.repo.List(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Liste des fiches de présence", fiches)
}

func (ctrl *FichePresenceController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	fiche, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La fiche de présence n'existe pas !")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Fiche de présence trouvée", fiche)
}

func (ctrl *FichePresenceController) Create(c *fiber.Ctx) error {
	var req dto.CreateFichePresenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fh, err := c.FormFile("signatureElectronique")
	if err != nil || fh == nil {
		return helper.Error(c, fiber.StatusBadRequest, "La signature électronique est requise !")
	}

	signatureURL, err := storage.Save(fh, signatureDir)
	if err != nil {
		return helper.FromError(c, err)
	}

	fiche, err := req.ToModel(signatureURL)
	if err != nil {
		_ = storage.Remove(signatureURL)
		return helper.FromError(c, err)
	}

	if err := ctrl.repo.Create(c.UserContext(), ctrl.DB, &fiche); err != nil {
		// le commit a échoué : on retire le fichier qui vient d'être écrit
		_ = storage.Remove(signatureURL)
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Agent, session-formation ou formateur référencé introuvable !")
		}
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Fiche de présence créée !", fiche)
}

func (ctrl *FichePresenceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	// 404 avant toute mutation
	if _, err := ctrl.repo.GetByID(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La fiche de présence n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	var req dto.UpdateFichePresenceRequest
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

	newSignatureURL := ""
	if fh, ferr := c.FormFile("signatureElectronique"); ferr == nil && fh != nil {
		url, serr := storage.Save(fh, signatureDir)
		if serr != nil {
			return helper.FromError(c, serr)
		}
		updates["signature_electronique"] = url
		newSignatureURL = url
	}

	fiche, err := ctrl.repo.Updates(c.UserContext(), ctrl.DB, id, updates)
	if err != nil {
		if newSignatureURL != "" {
			_ = storage.Remove(newSignatureURL)
		}
		if apperr.IsConflict(err) {
			return helper.Error(c, fiber.StatusConflict, "Agent, session-formation ou formateur référencé introuvable !")
		}
		return helper.FromError(c, err)
	}

	return helper.Success(c, "Fiche de présence mise à jour !", fiche)
}

func (ctrl *FichePresenceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID invalide")
	}

	if _, err := ctrl.repo.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		if apperr.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "La fiche de présence n'existe pas !")
		}
		return helper.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
