package database

import (
	"log"

	"gorm.io/gorm"

	fichesModel "formationpro_backend/internals/features/attendance/fiches/model"
	entreprisesModel "formationpro_backend/internals/features/companies/entreprises/model"
	sessionFormationsModel "formationpro_backend/internals/features/sessions/session_formations/model"
	sessionsModel "formationpro_backend/internals/features/sessions/sessions/model"
	coursModel "formationpro_backend/internals/features/trainings/cours/model"
	formationCoursModel "formationpro_backend/internals/features/trainings/formation_cours/model"
	formateursModel "formationpro_backend/internals/features/trainings/formateurs/model"
	formationsModel "formationpro_backend/internals/features/trainings/formations/model"
	usersModel "formationpro_backend/internals/features/users/users/model"
)

// Migrate creates every table with its unique and foreign-key constraints.
// Parents are migrated before the rows that reference them.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&usersModel.RoleModel{},
		&usersModel.UserModel{},
		&usersModel.HistoriqueModel{},
		&formateursModel.FormateurModel{},
		&coursModel.CategorieModel{},
		&coursModel.CoursModel{},
		&coursModel.TagModel{},
		&coursModel.TagCoursModel{},
		&formationsModel.FormationModel{},
		&formationCoursModel.FormationCoursModel{},
		&sessionsModel.SessionModel{},
		&sessionFormationsModel.SessionFormationModel{},
		&entreprisesModel.EntrepriseModel{},
		&entreprisesModel.AgentEntrepriseModel{},
		&sessionFormationsModel.SessionParticipantModel{},
		&fichesModel.FichePresenceModel{},
		&fichesModel.RapportFormateurModel{},
	)
	if err != nil {
		log.Printf("migration err: %v", err)
	}
	return err
}
