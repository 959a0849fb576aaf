package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"formationpro_backend/internals/configs"
	formateurModel "formationpro_backend/internals/features/trainings/formateurs/model"
	"formationpro_backend/internals/features/trainings/formations/model"
	"formationpro_backend/internals/features/trainings/formations/route"
)

type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	oldRoot, oldURL := configs.MediaRoot, configs.MediaURL
	configs.MediaRoot = t.TempDir()
	configs.MediaURL = "/medias"
	t.Cleanup(func() {
		configs.MediaRoot = oldRoot
		configs.MediaURL = oldURL
	})

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&formateurModel.FormateurModel{}, &model.FormationModel{}))

	formateur := formateurModel.FormateurModel{
		Nom:       "Diallo",
		Prenom:    "Mamadou",
		Telephone: "0600000001",
		Status:    1,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&formateur).Error)

	app := fiber.New()
	route.FormationRoutes(app, db)
	return app, db
}

func formationBody(t *testing.T, libelle, filename string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("libelle", libelle))
	require.NoError(t, w.WriteField("description", "Formation "+libelle))
	require.NoError(t, w.WriteField("formateurID", "1"))
	if filename != "" {
		part, err := w.CreateFormFile("imageUrl", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-image"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()

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

func TestCreateFormationStoresImageAndRow(t *testing.T) {
	app, _ := setupApp(t)

	body, contentType := formationBody(t, "Sécurité incendie", "logo.png")
	req := httptest.NewRequest(http.MethodPost, "/formations/", body)
	req.Header.Set("Content-Type", contentType)

	resp, env := doRequest(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.FormationModel
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "/medias/formations/logo.png", created.ImageURL)
	assert.Equal(t, 1, created.Status)

	_, err := os.Stat(filepath.Join(configs.MediaRoot, "formations", "logo.png"))
	assert.NoError(t, err)
}

func TestCreateFormationWithoutImageIsRejected(t *testing.T) {
	app, _ := setupApp(t)

	body, contentType := formationBody(t, "Sans image", "")
	req := httptest.NewRequest(http.MethodPost, "/formations/", body)
	req.Header.Set("Content-Type", contentType)

	resp, _ := doRequest(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateFormationDuplicateLabelRemovesUploadedFile(t *testing.T) {
	app, _ := setupApp(t)

	body, contentType := formationBody(t, "Sécurité incendie", "logo.png")
	req := httptest.NewRequest(http.MethodPost, "/formations/", body)
	req.Header.Set("Content-Type", contentType)
	resp, _ := doRequest(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body, contentType = formationBody(t, "Sécurité incendie", "autre.png")
	req = httptest.NewRequest(http.MethodPost, "/formations/", body)
	req.Header.Set("Content-Type", contentType)
	resp, env := doRequest(t, app, req)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, env.Message, "existe déjà")

	// l'upload du doublon est compensé : seul le premier fichier reste
	entries, err := os.ReadDir(filepath.Join(configs.MediaRoot, "formations"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateFormationSameFilenameGetsPrefixedURL(t *testing.T) {
	app, _ := setupApp(t)

	for _, libelle := range []string{"Première", "Seconde"} {
		body, contentType := formationBody(t, libelle, "logo.png")
		req := httptest.NewRequest(http.MethodPost, "/formations/", body)
		req.Header.Set("Content-Type", contentType)
		resp, _ := doRequest(t, app, req)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/formations/", nil)
	_, env := doRequest(t, app, req)

	var formations []model.FormationModel
	require.NoError(t, json.Unmarshal(env.Data, &formations))
	require.Len(t, formations, 2)

	assert.Equal(t, "/medias/formations/logo.png", formations[0].ImageURL)
	assert.Regexp(t, regexp.MustCompile(`^/medias/formations/\d{7}_logo\.png$`), formations[1].ImageURL)
}

func TestGetAllFormationsEmptyIsOK(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/formations/", nil)
	resp, env := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var formations []model.FormationModel
	require.NoError(t, json.Unmarshal(env.Data, &formations))
	assert.Empty(t, formations)
}

func TestUpdateFormationPartialPatch(t *testing.T) {
	app, db := setupApp(t)

	body, contentType := formationBody(t, "Habilitation électrique", "logo.png")
	req := httptest.NewRequest(http.MethodPost, "/formations/", body)
	req.Header.Set("Content-Type", contentType)
	resp, _ := doRequest(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("description", "Description revue"))
	require.NoError(t, w.Close())

	req = httptest.NewRequest(http.MethodPut, "/formations/1", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, env := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.FormationModel
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Description revue", updated.Description)
	// le reste ne bouge pas
	assert.Equal(t, "Habilitation électrique", updated.Libelle)
	assert.Equal(t, "/medias/formations/logo.png", updated.ImageURL)

	var inDB model.FormationModel
	require.NoError(t, db.First(&inDB, 1).Error)
	require.NotNil(t, inDB.UpdatedAt)
}

func TestUpdateMissingFormationIs404(t *testing.T) {
	app, _ := setupApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("description", "x"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, "/formations/99", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, _ := doRequest(t, app, req)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteFormation(t *testing.T) {
	app, _ := setupApp(t)

	body, contentType := formationBody(t, "Gestes et postures", "logo.png")
	req := httptest.NewRequest(http.MethodPost, "/formations/", body)
	req.Header.Set("Content-Type", contentType)
	resp, _ := doRequest(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/formations/1", nil)
	resp, _ = doRequest(t, app, req)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/formations/1", nil)
	resp, _ = doRequest(t, app, req)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// pas de cascade sur les médias : le fichier reste
	_, err := os.Stat(filepath.Join(configs.MediaRoot, "formations", "logo.png"))
	assert.NoError(t, err)
}
