package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formationpro_backend/internals/features/trainings/cours/controller"
)

func CoursRoutes(app fiber.Router, db *gorm.DB) {
	coursCtrl := controller.NewCoursController(db)
	categorieCtrl := controller.NewCategorieController(db)
	tagCtrl := controller.NewTagController(db)
	tagCoursCtrl := controller.NewTagCoursController(db)

	cours := app.Group("/cours")
	cours.Get("/", coursCtrl.GetAll)
	cours.Get("/:id", coursCtrl.GetByID)
	cours.Post("/", coursCtrl.Create)
	cours.Put("/:id", coursCtrl.Update)
	cours.Delete("/:id", coursCtrl.Delete)

	categories := app.Group("/categories")
	categories.Get("/", categorieCtrl.GetAll)
	categories.Get("/:id", categorieCtrl.GetByID)
	categories.Post("/", categorieCtrl.Create)
	categories.Put("/:id", categorieCtrl.Update)
	categories.Delete("/:id", categorieCtrl.Delete)

	tags := app.Group("/tags")
	tags.Get("/", tagCtrl.GetAll)
	tags.Get("/:id", tagCtrl.GetByID)
	tags.Post("/", tagCtrl.Create)
	tags.Put("/:id", tagCtrl.Update)
	tags.Delete("/:id", tagCtrl.Delete)

	tagCours := app.Group("/tag_cours")
	tagCours.Get("/", tagCoursCtrl.GetAll)
	tagCours.Get("/:id", tagCoursCtrl.GetByID)
	tagCours.Post("/", tagCoursCtrl.Create)
	tagCours.Put("/:id", tagCoursCtrl.Update)
	tagCours.Delete("/:id", tagCoursCtrl.Delete)
}
