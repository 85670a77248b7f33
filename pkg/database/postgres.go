package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresConnection opens a gorm connection to the configured database.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func NewPostgresConnection(databaseURL string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}
