package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/logger"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
)

// Config holds all configuration for the application
type Config struct {
	// Telegram Bot configuration
	BotToken string

	// OpenAI configuration, the key is optional
	OpenAIAPIBase string
	OpenAIAPIKey  string
	OpenAIModel   string

	// Storage
	DataDir     string
	CatalogPath string

	// Logging
	LogLevel  string
	LogFormat string

	// ReminderHour is the local hour of the daily expiry reminder, -1 disables it
	ReminderHour int

	// Suggestion defaults
	MaxSuggestions     int
	MinMatchPercentage float64
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logger.Global.Debug("No .env file loaded: %v", err)
	}

	cfg := &Config{}

	cfg.BotToken = os.Getenv("BOT_TOKEN")
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is required")
	}

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIAPIBase = getEnvWithDefault("OPENAI_API_BASE", "https://api.openai.com/v1")
	cfg.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo")

	cfg.DataDir = getEnvWithDefault("DATA_DIR", "./data")
	cfg.CatalogPath = os.Getenv("CATALOG_PATH")

	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.LogFormat = getEnvWithDefault("LOG_FORMAT", "console")
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	var err error
	if cfg.ReminderHour, err = getIntEnv("REMINDER_HOUR", 18); err != nil {
		return nil, err
	}
	if cfg.ReminderHour < -1 || cfg.ReminderHour > 23 {
		return nil, fmt.Errorf("REMINDER_HOUR must be between 0 and 23, or -1 to disable: got %d", cfg.ReminderHour)
	}

	defaults := models.DefaultSuggestionFilters()
	if cfg.MaxSuggestions, err = getIntEnv("MAX_SUGGESTIONS", defaults.MaxSuggestions); err != nil {
		return nil, err
	}
	if cfg.MaxSuggestions < 1 || cfg.MaxSuggestions > 50 {
		return nil, fmt.Errorf("MAX_SUGGESTIONS must be between 1 and 50: got %d", cfg.MaxSuggestions)
	}

	if cfg.MinMatchPercentage, err = getFloatEnv("MIN_MATCH_PERCENTAGE", defaults.MinMatchPercentage); err != nil {
		return nil, err
	}
	if cfg.MinMatchPercentage < 0 || cfg.MinMatchPercentage > 100 {
		return nil, fmt.Errorf("MIN_MATCH_PERCENTAGE must be between 0 and 100: got %v", cfg.MinMatchPercentage)
	}

	// Log configuration with sensitive data redacted
	logCfg := *cfg
	logCfg.BotToken = redact(logCfg.BotToken)
	logCfg.OpenAIAPIKey = redact(logCfg.OpenAIAPIKey)
	logger.Global.Info("Configuration loaded: %+v", logCfg)
	return cfg, nil
}

// SuggestionDefaults returns the filters used when a request sets none
func (c *Config) SuggestionDefaults() models.SuggestionFilters {
	f := models.DefaultSuggestionFilters()
	f.MaxSuggestions = c.MaxSuggestions
	f.MinMatchPercentage = c.MinMatchPercentage
	return f
}

// LoggerConfig returns the logger settings
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  c.LogLevel,
		Format: c.LogFormat,
	}
}

// HasOpenAI reports whether an OpenAI key is configured
func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getFloatEnv(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return f, nil
}

func redact(secret string) string {
	if len(secret) > 8 {
		return secret[:8] + "...REDACTED..."
	}
	return secret
}
