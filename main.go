package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/SAP-F-2025/doccli/internal/ai"
	"github.com/SAP-F-2025/doccli/internal/cli"
	"github.com/SAP-F-2025/doccli/internal/config"
	"github.com/SAP-F-2025/doccli/internal/extract"
	"github.com/SAP-F-2025/doccli/internal/repositories/sqlite"
	"github.com/SAP-F-2025/doccli/internal/services"
	"github.com/SAP-F-2025/doccli/internal/session"
	"github.com/SAP-F-2025/doccli/internal/validator"
	"github.com/SAP-F-2025/doccli/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger. Command output goes to stdout; logs stay on stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// Initialize database
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize repositories
	repoManager := sqlite.NewSQLiteRepository(sqlite.RepositoryConfig{DB: db})
	if err := repoManager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	// Initialize validator
	validator := validator.New()

	// Session store: the session file is the single source of truth for
	// who is acting; it is read once per invocation.
	sessions := session.NewStore(cfg.SessionFile)

	// External capabilities
	extractor := extract.NewService()
	generator := ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	// Initialize services
	serviceManager := services.NewServiceManager(repoManager, sessions, extractor, generator, services.Paths{
		DocsDir:      cfg.DocsDir,
		QuizDir:      cfg.QuizDir,
		AnswerKeyDir: cfg.AnswerKeyDir,
	}, logger, validator)

	app := cli.NewApp(cfg, logger, sessions, serviceManager, os.Stdout, os.Stderr)
	code := app.Run(context.Background(), os.Args[1:])

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	os.Exit(code)
}
