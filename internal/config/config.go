package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kbamnote/patil-admin/internal/logger"
)

// DefaultBaseURL is the primary API host used when PATIL_API_BASE_URL is unset.
const DefaultBaseURL = "https://patil-associates-api.onrender.com/api/v1"

// FallbackBaseURL is the secondary API host. It is never switched to
// automatically; set PATIL_API_BASE_URL to this value to use it.
const FallbackBaseURL = "https://patilassociates-backend.up.railway.app/api/v1"

type Config struct {
	// API Configuration
	APIBaseURL     string
	RequestTimeout time.Duration

	// Session Configuration
	SessionFile string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		APIBaseURL:    getEnv("PATIL_API_BASE_URL", DefaultBaseURL),
		SessionFile:   getEnv("PATIL_SESSION_FILE", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	timeoutSecs, err := strconv.Atoi(getEnv("PATIL_REQUEST_TIMEOUT", "30"))
	if err != nil || timeoutSecs <= 0 {
		return nil, fmt.Errorf("PATIL_REQUEST_TIMEOUT must be a positive number of seconds")
	}
	config.RequestTimeout = time.Duration(timeoutSecs) * time.Second

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("PATIL_API_BASE_URL must not be empty")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
