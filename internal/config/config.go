package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Sheets SheetsConfig
	JWT    JWTConfig
	Ai     AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

type JWTConfig struct {
	Secret             string
	AccessTokenMinutes int
	Issuer             string
	Audience           string
}

type AIConfig struct {
	LLMProvider        string // "openai" or "ollama"
	OpenAIAPIKey       string
	OpenAIKeywordModel string
	OpenAIPromptModel  string
	OllamaBaseURL      string
	OllamaModel        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: getEnv("GOOGLE_SHEETS_CREDENTIALS_PATH", ""),
			SpreadsheetID:   getEnv("GOOGLE_SHEETS_SPREADSHEET_ID", ""),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "default_secret"),
			AccessTokenMinutes: getEnvAsInt("JWT_ACCESS_TOKEN_MINUTES", 60),
			Issuer:             getEnv("JWT_ISSUER", ""),
			Audience:           getEnv("JWT_AUDIENCE", ""),
		},
		Ai: AIConfig{
			LLMProvider:        getEnv("LLM_PROVIDER", "openai"),
			OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
			OpenAIKeywordModel: getEnv("OPENAI_KEYWORD_MODEL", "gpt-4o-mini"),
			OpenAIPromptModel:  getEnv("OPENAI_PROMPT_MODEL", "gpt-4o"),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:        getEnv("OLLAMA_MODEL", "llama3"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
