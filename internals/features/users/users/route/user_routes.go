package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/features/users/users/controller"
)

func UserRoutes(app fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)
	roleCtrl := controller.NewRoleController(db)
	historiqueCtrl := controller.NewHistoriqueController(db)

	users := app.Group("/users")
	users.Get("/", userCtrl.GetAll)
	users.Get("/:id", userCtrl.GetByID)
	users.Post("/", userCtrl.Create)
	users.Put("/:id", userCtrl.Update)
	users.Delete("/:id", userCtrl.Delete)

	roles := app.Group("/roles")
	roles.Get("/", roleCtrl.GetAll)
	roles.Get("/:id", roleCtrl.GetByID)
	roles.Post("/", roleCtrl.Create)
	roles.Put("/:id", roleCtrl.Update)
	roles.Delete("/:id", roleCtrl.Delete)

	// append-only : pas de PUT
	historiques := app.Group("/historiques")
	historiques.Get("/", historiqueCtrl.GetAll)
	historiques.Get("/:id", historiqueCtrl.GetByID)
	historiques.Post("/", historiqueCtrl.Create)
	historiques.Delete("/:id", historiqueCtrl.Delete)
}
