package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nvoskov/userhub/internal/common/constants"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	ServiceName      string        `validate:"required"`
	LogDir           string        `validate:"-"`
	LogLevel         string        `validate:"oneof=DEBUG INFO WARNING ERROR CRITICAL"`
	AsyncLookupDelay time.Duration `validate:"min=0"`
}

var validate = validator.New()

func LoadConfig() (Config, error) {
	cfg := Config{
		ServiceName:      getEnv("USERHUB_SERVICE_NAME", constants.DefaultServiceName),
		LogDir:           os.Getenv("LOG_DIR"),
		LogLevel:         normalizeLevel(getEnv("LOG_LEVEL", constants.DefaultLogLevel)),
		AsyncLookupDelay: getDurationEnv("USERHUB_ASYNC_LOOKUP_DELAY", constants.AsyncLookupDelay),
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

func normalizeLevel(level string) string {
	level = strings.TrimSpace(strings.ToUpper(level))
	if level == "WARN" {
		return "WARNING"
	}
	return level
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
