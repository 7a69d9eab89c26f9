package config

import (
	"errors"
	"github.com/joho/godotenv"
	"io/fs"
	"os"
	"strings"
)

// Environment variables read as defaults for command line flags.
const (
	EnvPort           = "MESHCONV_PORT"
	EnvStorageDir     = "MESHCONV_STORAGE_DIR"
	EnvMaxUploadSize  = "MESHCONV_MAX_UPLOAD_SIZE"
	EnvAllowedOrigins = "MESHCONV_ALLOWED_ORIGINS"
	EnvAllowedFormats = "MESHCONV_ALLOWED_FORMATS"
	EnvLogLevel       = "MESHCONV_LOG_LEVEL"
)

// LoadEnv loads variables from .env files into the process environment. Variables that are already set win, and
// missing files are not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func GetEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// GetEnvList splits a comma separated variable.
func GetEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var list []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
