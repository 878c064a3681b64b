package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	// Gemini configuration
	GeminiAPIKey    string
	GeminiModel     string
	GeminiMaxTokens int

	// FAQ corpus
	FAQFile string

	// Static assets
	StaticDir string

	// Server configuration
	Port string
}

func LoadConfig() *Config {
	cfg := &Config{
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiMaxTokens: getEnvInt("GEMINI_MAX_TOKENS", 500),
		FAQFile:         getEnv("FAQ_FILE", "faqs.json"),
		StaticDir:       getEnv("STATIC_DIR", "static"),
		Port:            getEnv("PORT", "8000"),
	}

	// Validate required configuration
	if cfg.GeminiAPIKey == "" {
		slog.Error("GEMINI_API_KEY not set, all responses will use the local fallback")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return n
}
