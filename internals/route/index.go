package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ficheRoute "formationpro_backend/internals/features/attendance/fiches/route"
	entrepriseRoute "formationpro_backend/internals/features/companies/entreprises/route"
	sessionFormationRoute "formationpro_backend/internals/features/sessions/session_formations/route"
	sessionRoute "formationpro_backend/internals/features/sessions/sessions/route"
	coursRoute "formationpro_backend/internals/features/trainings/cours/route"
	formateurRoute "formationpro_backend/internals/features/trainings/formateurs/route"
	formationCoursRoute "formationpro_backend/internals/features/trainings/formation_cours/route"
	formationRoute "formationpro_backend/internals/features/trainings/formations/route"
	userRoute "formationpro_backend/internals/features/users/users/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api")

	userRoute.UserRoutes(api, db)
	formateurRoute.FormateurRoutes(api, db)
	coursRoute.CoursRoutes(api, db)
	formationRoute.FormationRoutes(api, db)
	formationCoursRoute.FormationCoursRoutes(api, db)
	sessionRoute.SessionRoutes(api, db)
	sessionFormationRoute.SessionFormationRoutes(api, db)
	entrepriseRoute.EntrepriseRoutes(api, db)
	ficheRoute.FicheRoutes(api, db)
}
