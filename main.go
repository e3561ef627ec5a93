package main

import (
	"log/slog"
	"os"

	api "coldreach-backend/cmd/api"
	analyticsdomain "coldreach-backend/internal/analytics/domain"
	analyticsRepo "coldreach-backend/internal/analytics/repository"
	analyticsUsecase "coldreach-backend/internal/analytics/usecase"
	optimizerUsecase "coldreach-backend/internal/optimizer/usecase"
	settingsdomain "coldreach-backend/internal/settings/domain"
	settingsRepo "coldreach-backend/internal/settings/repository"
	"coldreach-backend/pkg/config"
	"coldreach-backend/pkg/database"
	"coldreach-backend/pkg/logger"
	"coldreach-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Setup()

	// Initialize database
	db, err := database.NewSQLiteConnection(cfg)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&analyticsdomain.OutreachAttempt{}, &settingsdomain.SmtpSettings{}); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Initialize repositories (dependency injection)
	attemptRepository := analyticsRepo.NewAttemptRepository(db)
	settingsRepository := settingsRepo.NewSettingsRepository(db)

	// Initialize mail dispatcher
	dispatcher := mailer.New()

	// Initialize use cases
	analyticsUc := analyticsUsecase.NewAnalyticsUsecase(attemptRepository, settingsRepository, dispatcher)
	optimizerUc := optimizerUsecase.NewOptimizerUsecase(analyticsUc)

	// First-boot seeding; a failure is not fatal, the dashboard just stays empty
	if err := analyticsUc.SeedIfEmpty(); err != nil {
		slog.Warn("Seeding failed", "error", err)
	}

	// Initialize HTTP handler (also wires the AI generator)
	handler := api.NewHandler(analyticsUc, optimizerUc, settingsRepository, dispatcher, cfg)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("Server starting", "port", port)
	if err := handler.Start(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
