package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/features/attendance/fiches/controller"
)

func FicheRoutes(app fiber.Router, db *gorm.DB) {
	ficheCtrl := controller.NewFichePresenceController(db)
	rapportCtrl := controller.NewRapportFormateurController(db)

	fiches := app.Group("/fiches_presence")
	fiches.Get("/", ficheCtrl.GetAll)
	fiches.Get("/:id", ficheCtrl.GetByID)
	fiches.Post("/", ficheCtrl.Create)
	fiches.Put("/:id", ficheCtrl.Update)
	fiches.Delete("/:id", ficheCtrl.Delete)

	rapports := app.Group("/rapports_formateur")
	rapports.Get("/", rapportCtrl.GetAll)
	rapports.Get("/:id", rapportCtrl.GetByID)
	rapports.Post("/", rapportCtrl.Create)
	rapports.Put("/:id", rapportCtrl.Update)
	rapports.Delete("/:id", rapportCtrl.Delete)
}
