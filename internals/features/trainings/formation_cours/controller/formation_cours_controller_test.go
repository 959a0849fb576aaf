package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"formationpro_backend/internals/features/trainings/formation_cours/model"
	"formationpro_backend/internals/features/trainings/formation_cours/route"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.FormationCoursModel{}))

	require.NoError(t, db.Create(&model.FormationCoursModel{
		CoursID:     1,
		FormationID: 1,
		FormateurID: 1,
		CreatedAt:   time.Now(),
	}).Error)

	app := fiber.New()
	route.FormationCoursRoutes(app, db)
	return app, db
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestGetLinkUnderItsFormation(t *testing.T) {
	app, _ := setupApp(t)

	resp := get(t, app, "/formations/1/courses/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetLinkUnderWrongFormationIs404(t *testing.T) {
	app, _ := setupApp(t)

	resp := get(t, app, "/formations/2/courses/1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetMissingLinkIs404(t *testing.T) {
	app, _ := setupApp(t)

	resp := get(t, app, "/formations/1/courses/99")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPersistenceFailureIsNot404(t *testing.T) {
	app, db := setupApp(t)

	// une base injoignable doit sortir en 500, jamais en 404
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp := get(t, app, "/formations/1/courses/1")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
