package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/features/trainings/formations/controller"
)

func FormationRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFormationController(db)

	r := app.Group("/formations")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
