package delivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"coldreach-backend/internal/settings/domain"
	"coldreach-backend/internal/settings/repository"
	"coldreach-backend/pkg/mailer"
)

// Verifier checks SMTP connectivity and sends through explicit settings.
type Verifier interface {
	Verify(ctx context.Context, settings mailer.Settings) error
	Send(ctx context.Context, settings mailer.Settings, to, subject, body string) error
}

// SettingsHandler exposes the SMTP settings endpoints
type SettingsHandler struct {
	settingsRepo repository.SettingsRepository
	dispatcher   Verifier
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsRepo repository.SettingsRepository, dispatcher Verifier) *SettingsHandler {
	return &SettingsHandler{
		settingsRepo: settingsRepo,
		dispatcher:   dispatcher,
	}
}

// GET /api/smtp
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsRepo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// nil marshals to JSON null when nothing was ever saved
	c.JSON(http.StatusOK, settings)
}

// SaveRequest represents the request body for saving SMTP settings
type SaveRequest struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Secure      bool   `json:"secure"`
	User        string `json:"user"`
	Pass        string `json:"pass"`
	FromAddress string `json:"fromAddress"`
}

// POST /api/smtp
// Replaces the stored settings entirely.
func (h *SettingsHandler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.settingsRepo.Replace(&domain.SmtpSettings{
		Host:        req.Host,
		Port:        req.Port,
		Secure:      req.Secure,
		User:        req.User,
		Pass:        req.Pass,
		FromAddress: req.FromAddress,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// TestRequest represents the request body for testing SMTP settings
type TestRequest struct {
	SaveRequest
	To string `json:"to"`
}

// POST /api/smtp/test
// Verifies connectivity with the submitted settings and, when a recipient
// is given, sends a literal test message.
func (h *SettingsHandler) Test(c *gin.Context) {
	var req TestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := mailer.Settings{
		Host:   req.Host,
		Port:   req.Port,
		Secure: req.Secure,
		User:   req.User,
		Pass:   req.Pass,
		From:   req.FromAddress,
	}

	if err := h.dispatcher.Verify(c.Request.Context(), settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.To != "" {
		if err := h.dispatcher.Send(c.Request.Context(), settings, req.To, "Test email", "This is a test."); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
