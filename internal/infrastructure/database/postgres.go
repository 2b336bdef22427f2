package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

// NewPostgresDB opens the like store used when LIKE_STORE=postgres and
// migrates its schema.
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn not provided")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := db.AutoMigrate(&entity.Like{}); err != nil {
		return nil, fmt.Errorf("failed to migrate likes table: %w", err)
	}
	return db, nil
}

// ClosePostgres releases the pool behind db.
func ClosePostgres(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
