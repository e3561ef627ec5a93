package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	analyticsDelivery "coldreach-backend/internal/analytics/delivery"
	optimizerDelivery "coldreach-backend/internal/optimizer/delivery"
	settingsDelivery "coldreach-backend/internal/settings/delivery"
)

func SetupRoutes(r *gin.Engine, analyticsHandler *analyticsDelivery.AnalyticsHandler, settingsHandler *settingsDelivery.SettingsHandler, optimizerHandler *optimizerDelivery.OptimizerHandler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Dashboard routes
		api.GET("/analytics", analyticsHandler.List)
		api.GET("/stats", analyticsHandler.Stats)
		api.POST("/emails", analyticsHandler.CreateEmail)

		// SMTP settings routes
		smtp := api.Group("/smtp")
		{
			smtp.GET("", settingsHandler.Get)
			smtp.POST("", settingsHandler.Save)
			smtp.POST("/test", settingsHandler.Test)
		}

		// Optimizer routes
		api.POST("/generate", optimizerHandler.Generate)
		api.POST("/resume/analyze", optimizerHandler.AnalyzeResume)

		// Settings routes - Runtime AI configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", GetOllamaSettings)
			settings.PUT("/ollama", UpdateOllamaSettings)
			settings.POST("/ollama/test", TestOllamaConnection)
		}
	}
}
