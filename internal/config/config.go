// Package config loads exporter configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/jwulff/whisper-export/internal/db"
)

// Config holds the three paths the exporter works with.
type Config struct {
	DBPath    string
	OutputDir string
	StatePath string
}

// Load reads configuration from environment variables, applying defaults
// for anything unset. If a .env file exists in the current directory it is
// loaded first; real environment variables take precedence over it.
func Load() Config {
	_ = godotenv.Load() // ignore error if no .env file

	return Config{
		DBPath:    getEnv("MACWHISPER_DB", db.DefaultDBPath()),
		OutputDir: getEnv("EXPORT_OUTPUT_DIR", "./output"),
		StatePath: getEnv("EXPORT_STATE_FILE", ".export_state.json"),
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
