package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "AI_PROVIDER", "GEMINI_API_KEY", "OLLAMA_BASE_URL", "OLLAMA_MODEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "emails.db", cfg.DBPath)
	assert.Equal(t, "auto", cfg.AIProvider)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaBaseURL)
	assert.Equal(t, "llama3", cfg.OllamaModel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("AI_PROVIDER", "ollama")
	t.Setenv("OLLAMA_MODEL", "mistral")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "ollama", cfg.AIProvider)
	assert.Equal(t, "mistral", cfg.OllamaModel)
}
