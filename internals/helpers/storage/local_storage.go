// Package storage persists uploaded media under MEDIA_ROOT and hands back
// public URLs under MEDIA_URL. Filenames never overwrite an existing file:
// the destination is opened with O_EXCL and renamed with a random 7-digit
// prefix until the create succeeds.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"formationpro_backend/internals/apperr"
	"formationpro_backend/internals/configs"
)

// Bounded retry: with 9 million prefixes the loop terminates long before.
const maxCollisionRetries = 32

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	safe := unsafeChars.ReplaceAllString(filepath.Base(filename), "_")
	safe = strings.Trim(safe, "._")
	if safe == "" {
		safe = "fichier"
	}
	return safe
}

// Save writes the uploaded file under MEDIA_ROOT/uploadTo and returns its
// public URL (forward slashes, under MEDIA_URL). IO failures surface as
// typed errors, never as an empty URL.
func Save(fh *multipart.FileHeader, uploadTo string) (string, error) {
	if fh == nil {
		return "", apperr.New(apperr.KindValidation, "Aucun fichier fourni")
	}

	src, err := fh.Open()
	if err != nil {
		return "", apperr.Wrap(apperr.KindIO, "Impossible de lire le fichier envoyé", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return "", apperr.Wrap(apperr.KindIO, "Impossible de lire le fichier envoyé", err)
	}

	dir := filepath.Join(configs.MediaRoot, uploadTo)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperr.Wrap(apperr.KindIO, "Impossible de créer le dossier média", err)
	}

	filename := sanitizeFilename(fh.Filename)
	name := filename
	for attempt := 0; ; attempt++ {
		if attempt > maxCollisionRetries {
			return "", apperr.New(apperr.KindIO, "Impossible de trouver un nom de fichier libre")
		}

		dst, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			// Same disambiguation as always: random 7-digit prefix.
			name = fmt.Sprintf("%d_%s", 1000000+rand.Intn(9000000), filename)
			continue
		}
		if err != nil {
			return "", apperr.Wrap(apperr.KindIO, "Impossible d'écrire le fichier", err)
		}

		if _, err := dst.Write(content); err != nil {
			dst.Close()
			_ = os.Remove(filepath.Join(dir, name))
			return "", apperr.Wrap(apperr.KindIO, "Impossible d'écrire le fichier", err)
		}
		if err := dst.Close(); err != nil {
			_ = os.Remove(filepath.Join(dir, name))
			return "", apperr.Wrap(apperr.KindIO, "Impossible d'écrire le fichier", err)
		}

		return path.Join(configs.MediaURL, uploadTo, name), nil
	}
}

// LocalPath resolves a public URL produced by Save back to its on-disk path.
// URLs outside MEDIA_URL, or escaping MEDIA_ROOT, are rejected.
func LocalPath(publicURL string) (string, error) {
	prefix := strings.TrimSuffix(configs.MediaURL, "/") + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return "", apperr.New(apperr.KindIO, "URL média invalide")
	}
	rel := path.Clean(strings.TrimPrefix(publicURL, prefix))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", apperr.New(apperr.KindIO, "URL média invalide")
	}
	return filepath.Join(configs.MediaRoot, filepath.FromSlash(rel)), nil
}

// Remove deletes the file behind a public URL. Used as compensating action
// when the database write after an upload fails.
func Remove(publicURL string) error {
	p, err := LocalPath(publicURL)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperr.Wrap(apperr.KindIO, "Impossible de supprimer le fichier", err)
	}
	return nil
}
