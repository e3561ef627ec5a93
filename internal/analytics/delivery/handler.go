package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coldreach-backend/internal/analytics/usecase"
)

// AnalyticsHandler exposes the dashboard endpoints
type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

// GET /api/analytics
func (h *AnalyticsHandler) List(c *gin.Context) {
	attempts, err := h.analyticsUsecase.ListAttempts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// GET /api/stats
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	stats, err := h.analyticsUsecase.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateEmailRequest represents the request body for recording an attempt
type CreateEmailRequest struct {
	Subject     string  `json:"subject"`
	Recipient   string  `json:"recipient"`
	Probability float64 `json:"probability"`
	Preview     string  `json:"preview"`
}

// POST /api/emails
// Records the attempt and triggers a best-effort send through the stored
// SMTP settings. A dead SMTP host never fails this endpoint.
func (h *AnalyticsHandler) CreateEmail(c *gin.Context) {
	var req CreateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.analyticsUsecase.RecordAttempt(req.Subject, req.Recipient, req.Probability, req.Preview)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
