package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/features/sessions/sessions/controller"
)

func SessionRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSessionController(db)

	r := app.Group("/sessions")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
