package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/features/trainings/formateurs/controller"
)

func FormateurRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFormateurController(db)

	r := app.Group("/formateurs")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
