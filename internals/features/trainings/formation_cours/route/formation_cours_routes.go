package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/features/trainings/formation_cours/controller"
)

func FormationCoursRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFormationCoursController(db)

	r := app.Group("/formations/:formation_id/courses")
	r.Get("/", ctrl.GetAllByFormation)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
