package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service, read from the environment.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	Database DatabaseConfig
	LLM      LLMConfig

	LogLevel  string
	LogFormat string
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	ConnectAttempts int
	AutoMigrate     bool
}

type LLMConfig struct {
	Provider        string
	Model           string
	OpenAIAPIKey    string
	OllamaBaseURL   string
	AnthropicAPIKey string
	Timeout         time.Duration
}

// Load reads the configuration, first merging variables from the given .env
// files (or ".env" when none are given) without overriding the environment.
// Missing .env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", "postgres"))
	cfg := &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		AllowedOrigins:  getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		Database: DatabaseConfig{
			Driver:          driver,
			DSN:             getEnv("DATABASE_URL", defaultDSN(driver)),
			ConnectAttempts: getEnvAsInt("DB_CONNECT_ATTEMPTS", 5),
			AutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		LLM: LLMConfig{
			Provider:        strings.ToLower(getEnv("LLM_PROVIDER", "echo")),
			Model:           getEnv("LLM_MODEL", ""),
			OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
			OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
			Timeout:         getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
		},
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR is required")
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (must be postgres or sqlite)", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Database.ConnectAttempts < 1 {
		return errors.New("DB_CONNECT_ATTEMPTS must be at least 1")
	}

	switch c.LLM.Provider {
	case "echo", "ollama":
	case "openai":
		if c.LLM.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.LLM.AnthropicAPIKey == "" {
			return errors.New("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLM.Provider)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.LogFormat)
	}
	return nil
}

// defaultDSN builds a connection string from the POSTGRES_* variables, or an
// on-disk database file for sqlite.
func defaultDSN(driver string) string {
	if driver == "sqlite" {
		return "catalog.db?_foreign_keys=on"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(getEnv("POSTGRES_USER", "postgres"), getEnv("POSTGRES_PASSWORD", "postgres")),
		Host:     getEnv("POSTGRES_HOST", "localhost") + ":" + getEnv("POSTGRES_PORT", "5432"),
		Path:     getEnv("POSTGRES_DB", "catalog"),
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
