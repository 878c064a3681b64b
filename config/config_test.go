package config

import "testing"

func setCoreEnvEmpty(t *testing.T) {
	t.Helper()
	keys := []string{
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"GEMINI_MAX_TOKENS",
		"FAQ_FILE",
		"STATIC_DIR",
		"PORT",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	setCoreEnvEmpty(t)

	cfg := LoadConfig()

	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Fatalf("GeminiModel = %q, want gemini-2.0-flash", cfg.GeminiModel)
	}
	if cfg.GeminiMaxTokens != 500 {
		t.Fatalf("GeminiMaxTokens = %d, want 500", cfg.GeminiMaxTokens)
	}
	if cfg.FAQFile != "faqs.json" {
		t.Fatalf("FAQFile = %q, want faqs.json", cfg.FAQFile)
	}
	if cfg.StaticDir != "static" {
		t.Fatalf("StaticDir = %q, want static", cfg.StaticDir)
	}
	if cfg.Port != "8000" {
		t.Fatalf("Port = %q, want 8000", cfg.Port)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	setCoreEnvEmpty(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("GEMINI_MAX_TOKENS", "256")
	t.Setenv("PORT", "9000")

	cfg := LoadConfig()

	if cfg.GeminiAPIKey != "test-key" {
		t.Fatalf("GeminiAPIKey = %q, want test-key", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Fatalf("GeminiModel = %q, want override", cfg.GeminiModel)
	}
	if cfg.GeminiMaxTokens != 256 {
		t.Fatalf("GeminiMaxTokens = %d, want 256", cfg.GeminiMaxTokens)
	}
	if cfg.Port != "9000" {
		t.Fatalf("Port = %q, want 9000", cfg.Port)
	}
}

func TestLoadConfigInvalidIntFallsBack(t *testing.T) {
	setCoreEnvEmpty(t)
	t.Setenv("GEMINI_MAX_TOKENS", "not-a-number")

	cfg := LoadConfig()
	if cfg.GeminiMaxTokens != 500 {
		t.Fatalf("GeminiMaxTokens = %d, want the 500 default", cfg.GeminiMaxTokens)
	}
}
