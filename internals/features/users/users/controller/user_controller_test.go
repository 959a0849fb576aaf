package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"formationpro_backend/internals/features/users/users/model"
	"formationpro_backend/internals/features/users/users/route"
)

type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.RoleModel{}, &model.UserModel{}, &model.HistoriqueModel{}))

	require.NoError(t, db.Create(&model.RoleModel{Libelle: "admin", CreatedAt: time.Now()}).Error)

	app := fiber.New()
	route.UserRoutes(app, db)
	return app, db
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) (*http.Response, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}
	return resp, env
}

func userForm(username, phone, email string) url.Values {
	return url.Values{
		"username": {username},
		"nom":      {"Sow"},
		"prenom":   {"Awa"},
		"phone":    {phone},
		"email":    {email},
		"roleID":   {"1"},
	}
}

func TestCreateUser(t *testing.T) {
	app, _ := setupApp(t)

	resp, env := postForm(t, app, "/users/", userForm("asow", "0700000001", "asow@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.UserModel
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "asow", created.Username)
	assert.Equal(t, 1, created.Status)
}

func TestCreateUserDuplicateUsernameIsConflict(t *testing.T) {
	app, db := setupApp(t)

	resp, _ := postForm(t, app, "/users/", userForm("asow", "0700000001", "asow@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := postForm(t, app, "/users/", userForm("asow", "0700000002", "autre@example.com"))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, env.Message, "existe déjà")

	var count int64
	require.NoError(t, db.Model(&model.UserModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateUserInvalidEmailIsRejected(t *testing.T) {
	app, _ := setupApp(t)

	resp, env := postForm(t, app, "/users/", userForm("asow", "0700000001", "pas-un-email"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", env.Status)
}

func TestHistoriqueHasNoUpdateRoute(t *testing.T) {
	app, db := setupApp(t)

	require.NoError(t, db.Create(&model.UserModel{
		Username: "asow", Nom: "Sow", Prenom: "Awa",
		Phone: "0700000001", Email: "asow@example.com",
		RoleID: 1, Status: 1, CreatedAt: time.Now(),
	}).Error)

	resp, _ := postForm(t, app, "/historiques/", url.Values{
		"userID":        {"1"},
		"description":   {"création de la session printemps"},
		"typeOperation": {"CREATE"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// journal append-only : pas de PUT exposé
	req := httptest.NewRequest(http.MethodPut, "/historiques/1", strings.NewReader("description=modif"))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	putResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, putResp.StatusCode)
}

func TestDeleteUserReturnsMessage(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := postForm(t, app, "/users/", userForm("asow", "0700000001", "asow@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
	delResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, delResp.StatusCode)

	raw, err := io.ReadAll(delResp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, "Utilisateur supprimé !", env.Message)
}
