package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port             string
	LogLevel         string
	InsightAPIKey    string
	InsightModel     string
	InsightMaxTokens int64
	InsightBaseURL   string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SenderEmail      string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		InsightAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		InsightModel:   getEnv("INSIGHT_MODEL", "claude-sonnet-4-20250514"),
		InsightBaseURL: getEnv("INSIGHT_BASE_URL", ""),
		SMTPHost:       getEnv("SMTP_HOST", "localhost"),
		SMTPPort:       getEnv("SMTP_PORT", "25"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "reports@finhealth.local"),
	}

	maxTokens, err := strconv.ParseInt(getEnv("INSIGHT_MAX_TOKENS", "1024"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid INSIGHT_MAX_TOKENS: %w", err)
	}
	cfg.InsightMaxTokens = maxTokens

	if cfg.InsightModel == "" {
		return nil, fmt.Errorf("INSIGHT_MODEL is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
