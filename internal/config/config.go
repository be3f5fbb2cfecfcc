// ABOUTME: Centralized configuration for the chef pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the pipeline
type Config struct {
	// OpenAI settings
	OpenAIKey  string
	ChatModel  string
	GenTimeout time.Duration
	BaseTemp   float64
	TempStep   float64

	// Pipeline settings
	MaxAttempts     int
	ConfidenceFloor float64
	RetryDelay      time.Duration
	HistoryWindow   int

	// Quality gate thresholds (the quorum mechanism is fixed; numbers are not)
	ConsistencyThreshold float64
	ThemeThresholdBase   float64
	StyleThresholdBase   float64

	// Session settings
	SessionBackend string // "memory" or "sqlite"
	SessionTTL     time.Duration
	SQLitePath     string

	// HTTP settings
	ListenAddr string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		OpenAIKey:            os.Getenv("OPENAI_API_KEY"),
		ChatModel:            getEnv("CHEF_OPENAI_MODEL", "gpt-4o-mini"),
		GenTimeout:           getEnvDuration("CHEF_GEN_TIMEOUT", 30*time.Second),
		BaseTemp:             getEnvFloat("CHEF_BASE_TEMPERATURE", 0.7),
		TempStep:             getEnvFloat("CHEF_TEMPERATURE_STEP", 0.15),
		MaxAttempts:          getEnvInt("CHEF_MAX_ATTEMPTS", 3),
		ConfidenceFloor:      getEnvFloat("CHEF_CONFIDENCE_FLOOR", 0.2),
		RetryDelay:           getEnvDuration("CHEF_RETRY_DELAY", 0),
		HistoryWindow:        getEnvInt("CHEF_HISTORY_WINDOW", 10),
		ConsistencyThreshold: getEnvFloat("CHEF_CONSISTENCY_THRESHOLD", 0.85),
		ThemeThresholdBase:   getEnvFloat("CHEF_THEME_THRESHOLD", 0.3),
		StyleThresholdBase:   getEnvFloat("CHEF_STYLE_THRESHOLD", 0.4),
		SessionBackend:       getEnv("CHEF_SESSION_BACKEND", "memory"),
		SessionTTL:           getEnvDuration("CHEF_SESSION_TTL", 30*time.Minute),
		SQLitePath:           os.Getenv("CHEF_SQLITE_PATH"),
		ListenAddr:           getEnv("CHEF_LISTEN_ADDR", ":8080"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxAttempts < 1 || c.MaxAttempts > 10 {
		return fmt.Errorf("CHEF_MAX_ATTEMPTS must be 1-10, got %d", c.MaxAttempts)
	}
	if c.ConfidenceFloor < 0 || c.ConfidenceFloor > 1 {
		return fmt.Errorf("CHEF_CONFIDENCE_FLOOR must be 0-1, got %f", c.ConfidenceFloor)
	}
	if c.ConsistencyThreshold < 0 || c.ConsistencyThreshold > 1 {
		return fmt.Errorf("CHEF_CONSISTENCY_THRESHOLD must be 0-1, got %f", c.ConsistencyThreshold)
	}
	if c.ThemeThresholdBase < 0 || c.ThemeThresholdBase > 1 {
		return fmt.Errorf("CHEF_THEME_THRESHOLD must be 0-1, got %f", c.ThemeThresholdBase)
	}
	if c.StyleThresholdBase < 0 || c.StyleThresholdBase > 1 {
		return fmt.Errorf("CHEF_STYLE_THRESHOLD must be 0-1, got %f", c.StyleThresholdBase)
	}
	if c.SessionBackend != "memory" && c.SessionBackend != "sqlite" {
		return fmt.Errorf("CHEF_SESSION_BACKEND must be memory or sqlite, got %q", c.SessionBackend)
	}
	if c.GenTimeout <= 0 {
		return fmt.Errorf("CHEF_GEN_TIMEOUT must be positive, got %v", c.GenTimeout)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
