package repository

import (
	"gorm.io/gorm"

	"coldreach-backend/internal/settings/domain"
)

// SettingsRepository is the single-slot store for SMTP settings
type SettingsRepository interface {
	// Get returns the current settings, or nil when none were ever saved
	Get() (*domain.SmtpSettings, error)
	// Replace discards any previous settings and stores the given ones
	Replace(settings *domain.SmtpSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new GORM-based SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get() (*domain.SmtpSettings, error) {
	var settings domain.SmtpSettings
	err := r.db.Order("id DESC").First(&settings).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Replace(settings *domain.SmtpSettings) error {
	// Full delete-then-insert, not an update: the slot holds one logical row.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.SmtpSettings{}).Error; err != nil {
			return err
		}
		settings.ID = 0
		return tx.Create(settings).Error
	})
}
