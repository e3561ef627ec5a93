package usecase

import (
	"context"
	"log/slog"

	"coldreach-backend/internal/analytics/domain"
	"coldreach-backend/internal/analytics/repository"
	settingsdomain "coldreach-backend/internal/settings/domain"
	"coldreach-backend/pkg/mailer"
)

const (
	seedSize      = 1200
	seedThreshold = 1000
)

// SettingsReader provides the currently stored SMTP settings, nil when none.
type SettingsReader interface {
	Get() (*settingsdomain.SmtpSettings, error)
}

// Dispatcher sends an email through the given SMTP settings.
type Dispatcher interface {
	Send(ctx context.Context, settings mailer.Settings, to, subject, body string) error
}

// AnalyticsUsecase owns the outreach-attempt lifecycle: listing, stats,
// recording new attempts (with best-effort dispatch) and first-boot seeding.
type AnalyticsUsecase interface {
	ListAttempts() ([]domain.OutreachAttempt, error)
	Stats() (*domain.Stats, error)
	// RecordAttempt persists the attempt, then tries to send it through the
	// stored SMTP settings. Dispatch failures are logged, never returned.
	RecordAttempt(subject, recipient string, probability float64, preview string) (uint, error)
	// SeedIfEmpty loads synthetic history on a fresh database
	SeedIfEmpty() error
}

type analyticsUsecase struct {
	attempts   repository.AttemptRepository
	settings   SettingsReader
	dispatcher Dispatcher
}

// NewAnalyticsUsecase creates a new AnalyticsUsecase
func NewAnalyticsUsecase(attempts repository.AttemptRepository, settings SettingsReader, dispatcher Dispatcher) AnalyticsUsecase {
	return &analyticsUsecase{
		attempts:   attempts,
		settings:   settings,
		dispatcher: dispatcher,
	}
}

func (u *analyticsUsecase) ListAttempts() ([]domain.OutreachAttempt, error) {
	return u.attempts.List()
}

func (u *analyticsUsecase) Stats() (*domain.Stats, error) {
	return u.attempts.Stats()
}

func (u *analyticsUsecase) RecordAttempt(subject, recipient string, probability float64, preview string) (uint, error) {
	id, err := u.attempts.Insert(subject, recipient, probability)
	if err != nil {
		return 0, err
	}

	// Best effort: send through whatever settings exist right now.
	// The attempt is already recorded; the caller never sees a dispatch error.
	go u.dispatch(recipient, subject, preview)

	return id, nil
}

func (u *analyticsUsecase) dispatch(recipient, subject, body string) {
	settings, err := u.settings.Get()
	if err != nil {
		slog.Warn("SMTP dispatch skipped, settings lookup failed", "error", err)
		return
	}
	if settings == nil {
		return
	}

	err = u.dispatcher.Send(context.Background(), mailer.Settings{
		Host:   settings.Host,
		Port:   settings.Port,
		Secure: settings.Secure,
		User:   settings.User,
		Pass:   settings.Pass,
		From:   settings.FromAddress,
	}, recipient, subject, body)
	if err != nil {
		slog.Warn("SMTP send failed", "recipient", recipient, "error", err)
	}
}

func (u *analyticsUsecase) SeedIfEmpty() error {
	count, err := u.attempts.Count()
	if err != nil {
		return err
	}
	if count >= seedThreshold {
		return nil
	}

	slog.Info("Seeding database", "rows", seedSize)
	if err := u.attempts.Seed(seedSize); err != nil {
		return err
	}
	slog.Info("Seeding complete")
	return nil
}
