package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig menampung semua variabel konfigurasi aplikasi.
type AppConfig struct {
	Port          string
	Env           string
	DataDir       string
	UploadDir     string
	SessionKey    []byte
	SessionMaxAge int // umur cookie sesi dalam detik
	CloudinaryURL string
}

// Load memuat konfigurasi dari file .env atau environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("ENVIRONMENT", "development"),
		DataDir:       getEnv("DATA_DIR", "data"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		SessionMaxAge: 3600,
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
	}

	// Atur kunci Paseto untuk cookie sesi
	key := getEnv("SESSION_KEY", "rahasia-rahasia-rahasia-rahasia!")
	if len(key) != 32 {
		log.Fatal("SESSION_KEY must be 32 characters long!")
	}
	cfg.SessionKey = []byte(key)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
