package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/features/sessions/session_formations/controller"
)

func SessionFormationRoutes(app fiber.Router, db *gorm.DB) {
	sfCtrl := controller.NewSessionFormationController(db)
	participantCtrl := controller.NewSessionParticipantController(db)

	sf := app.Group("/session_formations")
	sf.Get("/", sfCtrl.GetAll)
	sf.Get("/:id", sfCtrl.GetByID)
	sf.Post("/", sfCtrl.Create)
	sf.Put("/:id", sfCtrl.Update)
	sf.Delete("/:id", sfCtrl.Delete)

	participants := app.Group("/session_participants")
	participants.Get("/", participantCtrl.GetAll)
	participants.Get("/:id", participantCtrl.GetByID)
	participants.Post("/", participantCtrl.Create)
	participants.Put("/:id", participantCtrl.Update)
	participants.Delete("/:id", participantCtrl.Delete)
}
