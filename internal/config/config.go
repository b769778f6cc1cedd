package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	// Storage paths
	DBPath       string
	DocsDir      string
	QuizDir      string
	AnswerKeyDir string
	SessionFile  string

	// Generation service
	GeminiAPIKey string
	GeminiModel  string

	LogLevel slog.Level
}

// LoadConfig reads configuration from the environment, loading a local .env
// file first if one exists. The generation API key is allowed to be empty
// here: its absence is reported when a command actually needs it.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:       getEnvOrDefault("DOCCLI_DB_PATH", "metadata.db"),
		DocsDir:      getEnvOrDefault("DOCCLI_DOCS_DIR", "docs"),
		QuizDir:      getEnvOrDefault("DOCCLI_QUIZ_DIR", "quizzes"),
		AnswerKeyDir: getEnvOrDefault("DOCCLI_ANSWER_KEY_DIR", "answer_keys"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		LogLevel:     parseLogLevel(os.Getenv("LOG_LEVEL")),
	}

	sessionFile := os.Getenv("DOCCLI_SESSION_FILE")
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		sessionFile = filepath.Join(home, ".doccli_session")
	}
	cfg.SessionFile = sessionFile

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
