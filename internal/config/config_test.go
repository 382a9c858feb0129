package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 60, cfg.JWT.AccessTokenMinutes)
	assert.Equal(t, "openai", cfg.Ai.LLMProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.Ai.OpenAIKeywordModel)
	assert.Equal(t, "gpt-4o", cfg.Ai.OpenAIPromptModel)
	assert.Equal(t, "http://localhost:11434", cfg.Ai.OllamaBaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_ACCESS_TOKEN_MINUTES", "15")
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "sheet-abc")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 15, cfg.JWT.AccessTokenMinutes)
	assert.Equal(t, "ollama", cfg.Ai.LLMProvider)
	assert.Equal(t, "sheet-abc", cfg.Sheets.SpreadsheetID)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_MINUTES", "soon")

	cfg := Load()
	assert.Equal(t, 60, cfg.JWT.AccessTokenMinutes)
}
