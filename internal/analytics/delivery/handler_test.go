package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"coldreach-backend/internal/analytics/domain"
	"coldreach-backend/internal/analytics/repository"
	"coldreach-backend/internal/analytics/usecase"
	settingsdomain "coldreach-backend/internal/settings/domain"
	"coldreach-backend/pkg/mailer"
)

type storedSettings struct {
	settings *settingsdomain.SmtpSettings
}

func (s *storedSettings) Get() (*settingsdomain.SmtpSettings, error) {
	return s.settings, nil
}

type deadDispatcher struct{}

func (deadDispatcher) Send(context.Context, mailer.Settings, string, string, string) error {
	return errors.New("dial tcp: i/o timeout")
}

func setupRouter(t *testing.T, settings *settingsdomain.SmtpSettings) (*gin.Engine, repository.AttemptRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.OutreachAttempt{}))

	repo := repository.NewAttemptRepository(db)
	uc := usecase.NewAnalyticsUsecase(repo, &storedSettings{settings: settings}, deadDispatcher{})
	handler := NewAnalyticsHandler(uc)

	r := gin.New()
	r.GET("/api/analytics", handler.List)
	r.GET("/api/stats", handler.Stats)
	r.POST("/api/emails", handler.CreateEmail)
	return r, repo
}

func TestCreateEmail_UnreachableSMTPStillSucceeds(t *testing.T) {
	r, repo := setupRouter(t, &settingsdomain.SmtpSettings{
		Host: "smtp.dead.example", Port: 587, User: "u", Pass: "p",
	})

	payload, _ := json.Marshal(CreateEmailRequest{
		Subject:     "Cold Email to cto@techflow.io",
		Recipient:   "cto@techflow.io",
		Probability: 0.72,
		Preview:     "Hello,",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/emails", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]uint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotZero(t, body["id"])

	attempts, err := repo.List()
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, 0.72, attempts[0].Probability)
}

func TestCreateEmail_BadJSON(t *testing.T) {
	r, _ := setupRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/emails", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAndStats(t *testing.T) {
	r, repo := setupRouter(t, nil)

	_, err := repo.Insert("First", "a@x.io", 0.5)
	require.NoError(t, err)
	_, err = repo.Insert("Second", "b@y.io", 0.9)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var attempts []domain.OutreachAttempt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &attempts))
	require.Len(t, attempts, 2)
	assert.Equal(t, "Second", attempts[0].Subject)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var stats domain.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.Total)
	assert.InDelta(t, 0.7, stats.AvgProb, 1e-9)
}
