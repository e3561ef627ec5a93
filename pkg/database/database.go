package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"coldreach-backend/pkg/config"
)

// NewSQLiteConnection opens the single local database file the whole
// service persists into. The file is created on first boot.
func NewSQLiteConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %s: %w", cfg.DBPath, err)
	}
	return db, nil
}
