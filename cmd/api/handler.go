package api

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	analyticsDelivery "coldreach-backend/internal/analytics/delivery"
	analyticsUsecasePkg "coldreach-backend/internal/analytics/usecase"
	optimizerDelivery "coldreach-backend/internal/optimizer/delivery"
	optimizerUsecasePkg "coldreach-backend/internal/optimizer/usecase"
	settingsDelivery "coldreach-backend/internal/settings/delivery"
	settingsRepo "coldreach-backend/internal/settings/repository"
	"coldreach-backend/pkg/ai"
	"coldreach-backend/pkg/config"
	"coldreach-backend/pkg/mailer"
)

type Handler struct {
	analyticsHandler *analyticsDelivery.AnalyticsHandler
	settingsHandler  *settingsDelivery.SettingsHandler
	optimizerHandler *optimizerDelivery.OptimizerHandler
	config           *config.Config
	prewarmer        *ai.Prewarmer
}

// NewHandler wires the generator into the optimizer usecase and builds the
// delivery handlers.
func NewHandler(analyticsUc analyticsUsecasePkg.AnalyticsUsecase, optimizerUc optimizerUsecasePkg.OptimizerUsecase, settingsRepository settingsRepo.SettingsRepository, dispatcher *mailer.Dispatcher, cfg *config.Config) *Handler {
	// Initialize runtime config for the settings API
	InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	// Initialize the AI generator with dynamic config getters so runtime
	// settings updates take effect without a restart
	generator, err := ai.NewGenerator(ai.Config{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:     cfg.GeminiAPIKey,
		GetOllamaBaseURL: GetRuntimeOllamaBaseURL,
		GetOllamaModel:   GetRuntimeOllamaModel,
	})
	if err != nil {
		slog.Warn("Failed to initialize AI generator", "error", err)
	} else {
		slog.Info("AI generator initialized", "provider", cfg.AIProvider)
		optimizerUc.SetGenerator(generator)
	}

	h := &Handler{
		analyticsHandler: analyticsDelivery.NewAnalyticsHandler(analyticsUc),
		settingsHandler:  settingsDelivery.NewSettingsHandler(settingsRepository, dispatcher),
		optimizerHandler: optimizerDelivery.NewOptimizerHandler(optimizerUc),
		config:           cfg,
		prewarmer:        &ai.Prewarmer{},
	}

	// Speculative warm-up so the first generation is faster; nobody waits
	// on the result
	if generator != nil {
		h.prewarmer.Prewarm(context.Background(), generator)
	}

	return h
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.analyticsHandler, h.settingsHandler, h.optimizerHandler)

	return r.Run(addr)
}
