package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

const (
	DefaultAPIBase        = "http://localhost:3000/api"
	DefaultBaseURL        = "http://localhost:3000"
	DefaultTimeoutSeconds = 30
)

type AppConfig struct {
	Env                Environment
	LogLevel           string
	RawBodyLog         bool
	HttpTimeoutSeconds int
}

// BackendConfig holds the two base URL shapes the helpers use: APIBase
// already carries the /api prefix, BaseURL does not.
type BackendConfig struct {
	APIBase string
	BaseURL string
}

type Config struct {
	App     AppConfig
	Backend BackendConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	return &Config{
		App: AppConfig{
			Env:                env,
			LogLevel:           getLogLevel(env),
			RawBodyLog:         getEnvBool("APP_RAW_BODY_LOG", false),
			HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", DefaultTimeoutSeconds),
		},
		Backend: BackendConfig{
			APIBase: getEnv("API_BASE", DefaultAPIBase),
			BaseURL: getEnv("BACKEND_BASE_URL", DefaultBaseURL),
		},
	}, nil
}

// Default returns the configuration used when nothing is set in the
// environment.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Env:                Development,
			LogLevel:           "debug",
			HttpTimeoutSeconds: DefaultTimeoutSeconds,
		},
		Backend: BackendConfig{
			APIBase: DefaultAPIBase,
			BaseURL: DefaultBaseURL,
		},
	}
}

// ValidateUploader checks only what upload-document reads.
func (c *Config) ValidateUploader() error {
	if err := validateURL("API_BASE", c.Backend.APIBase); err != nil {
		return err
	}
	return c.validateApp()
}

// ValidateDeleter checks only what delete-season reads.
func (c *Config) ValidateDeleter() error {
	if err := validateURL("BACKEND_BASE_URL", c.Backend.BaseURL); err != nil {
		return err
	}
	return c.validateApp()
}

func (c *Config) validateApp() error {
	if c.App.HttpTimeoutSeconds <= 0 {
		return fmt.Errorf("APP_HTTP_TIMEOUT_SECONDS must be positive, got %d", c.App.HttpTimeoutSeconds)
	}
	return nil
}

func validateURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s must not be empty", key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", key, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value == "true" {
		return true
	}
	return defaultValue
}
