package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

var (
	// MediaRoot is the on-disk directory where uploaded files land.
	MediaRoot string
	// MediaURL is the public URL prefix mounted on MediaRoot.
	MediaURL string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Pas de fichier .env, utilisation des variables d'environnement du système")
	}

	MediaRoot = GetEnv("MEDIA_ROOT", filepath.Join(".", "mediafiles"))
	MediaURL = GetEnv("MEDIA_URL", "/medias")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
