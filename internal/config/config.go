package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/locvowork/companyset/internal/errors"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// app config
	APP_PORT         string
	COMPANY_CAPACITY int
	SEED_FILE        string
	EXPORT_TEMPLATE  string
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
}

// LoadEnvConfig reads the given .env files (".env" when none are given)
// into DefaultEnvConfig. Missing files are skipped; values already set in
// the environment win.
func LoadEnvConfig(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "load %s", name)
		}
	}

	DefaultEnvConfig = &envConfig{
		APP_PORT:         getEnvString("APP_PORT", "8080"),
		COMPANY_CAPACITY: getEnvInt("COMPANY_CAPACITY", 100),
		SEED_FILE:        getEnvString("SEED_FILE", ""),
		EXPORT_TEMPLATE:  getEnvString("EXPORT_TEMPLATE", ""),
		LOG_FILE_PATH:    getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:        getEnvString("LOG_LEVEL", "info"),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}
