package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const ENV_FILE = ".env"

const (
	defaultDatabaseURL = "mongodb://localhost:27017/blog"
	defaultPort        = "8080"
	defaultLogLevel    = "info"
)

type AppConfig struct {
	DatabaseURL     string
	TestDatabaseURL string
	Port            string
	LogLevel        string
}

var config *AppConfig

// InitApp loads the .env file (if any) and reads all configuration from the
// environment. Configuration is read once; there is no runtime reconfiguration.
func InitApp() {
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	config = &AppConfig{
		DatabaseURL:     getenv("DATABASE_URL", defaultDatabaseURL),
		TestDatabaseURL: os.Getenv("TEST_DATABASE_URL"),
		Port:            getenv("PORT", defaultPort),
		LogLevel:        getenv("LOG_LEVEL", defaultLogLevel),
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetBasePath walks up from the working directory looking for the directory
// holding the .env file, so tests in nested packages pick up the same config.
func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ENV_FILE)
		if info, err := os.Stat(envPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
