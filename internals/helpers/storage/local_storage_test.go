package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/configs"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func setupMediaDirs(t *testing.T) {
	t.Helper()
	oldRoot, oldURL := configs.MediaRoot, configs.MediaURL
	configs.MediaRoot = t.TempDir()
	configs.MediaURL = "/medias"
	t.Cleanup(func() {
		configs.MediaRoot = oldRoot
		configs.MediaURL = oldURL
	})
}

func TestSaveWritesFileAndReturnsPublicURL(t *testing.T) {
	setupMediaDirs(t)

	fh := makeFileHeader(t, "logo.png", []byte("png-bytes"))
	url, err := Save(fh, "formations")
	require.NoError(t, err)
	assert.Equal(t, "/medias/formations/logo.png", url)

	got, err := os.ReadFile(filepath.Join(configs.MediaRoot, "formations", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), got)
}

func TestSaveNeverOverwritesExistingFile(t *testing.T) {
	setupMediaDirs(t)

	first := makeFileHeader(t, "logo.png", []byte("first"))
	firstURL, err := Save(first, "formations")
	require.NoError(t, err)

	second := makeFileHeader(t, "logo.png", []byte("second"))
	secondURL, err := Save(second, "formations")
	require.NoError(t, err)

	assert.NotEqual(t, firstURL, secondURL)
	assert.Regexp(t, regexp.MustCompile(`^/medias/formations/\d{7}_logo\.png$`), secondURL)

	// le premier fichier est intact
	got, err := os.ReadFile(filepath.Join(configs.MediaRoot, "formations", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)

	p, err := LocalPath(secondURL)
	require.NoError(t, err)
	got, err = os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestSaveSanitizesFilename(t *testing.T) {
	setupMediaDirs(t)

	fh := makeFileHeader(t, "mon logo (v2).png", []byte("x"))
	url, err := Save(fh, "formations")
	require.NoError(t, err)
	assert.Equal(t, "/medias/formations/mon_logo_v2_.png", url)
}

func TestSaveNilFileHeader(t *testing.T) {
	setupMediaDirs(t)

	_, err := Save(nil, "formations")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestLocalPathRejectsForeignAndTraversalURLs(t *testing.T) {
	setupMediaDirs(t)

	for _, url := range []string{
		"/autre/formations/logo.png",
		"/medias/../secret.txt",
		"/medias/..",
		"/medias/",
	} {
		_, err := LocalPath(url)
		assert.Error(t, err, url)
	}
}

func TestRemoveDeletesFileBehindURL(t *testing.T) {
	setupMediaDirs(t)

	fh := makeFileHeader(t, "signature.png", []byte("sig"))
	url, err := Save(fh, "signatures")
	require.NoError(t, err)

	p, err := LocalPath(url)
	require.NoError(t, err)
	_, err = os.Stat(p)
	require.NoError(t, err)

	require.NoError(t, Remove(url))
	_, err = os.Stat(p)
	assert.True(t, os.IsNotExist(err))

	// idempotent : supprimer un fichier déjà absent ne casse rien
	assert.NoError(t, Remove(url))
}
