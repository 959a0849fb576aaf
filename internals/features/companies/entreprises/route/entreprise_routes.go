package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/features/companies/entreprises/controller"
)

func EntrepriseRoutes(app fiber.Router, db *gorm.DB) {
	entrepriseCtrl := controller.NewEntrepriseController(db)
	agentCtrl := controller.NewAgentEntrepriseController(db)

	entreprises := app.Group("/entreprises")
	entreprises.Get("/", entrepriseCtrl.GetAll)
	entreprises.Get("/:id", entrepriseCtrl.GetByID)
	entreprises.Post("/", entrepriseCtrl.Create)
	entreprises.Put("/:id", entrepriseCtrl.Update)
	entreprises.Delete("/:id", entrepriseCtrl.Delete)

	agents := app.Group("/agents")
	agents.Get("/", agentCtrl.GetAll)
	agents.Get("/:id", agentCtrl.GetByID)
	agents.Post("/", agentCtrl.Create)
	agents.Put("/:id", agentCtrl.Update)
	agents.Delete("/:id", agentCtrl.Delete)
}
