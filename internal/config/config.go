package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	OutputDir string

	DefaultMode string
	DefaultYear int

	StudentSuffix string
	AliasFile     string
	ExcludeFile   string

	PreviewRows int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		DefaultMode: getEnv("DEFAULT_MODE", "PCP"),
		DefaultYear: getEnvInt("DEFAULT_YEAR", time.Now().Year()),

		StudentSuffix: getEnv("STUDENT_SUFFIX", "Columbia"),
		AliasFile:     getEnv("ALIAS_FILE", ""),
		ExcludeFile:   getEnv("EXCLUDE_FILE", ""),

		PreviewRows: getEnvInt("PREVIEW_ROWS", 20),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
