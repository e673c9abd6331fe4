package database

import (
	"fmt"
	"time"

	"github.com/lshigami/examsched/config"
	"github.com/lshigami/examsched/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func DSN(cfg config.Database) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s application_name=examsched",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
}

// NewDatabase opens the Postgres connection pool. It returns a nil *gorm.DB
// when the memory driver is configured.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		log.Warn().Msg("DATABASE_DRIVER=memory: exams are kept in process memory only")
		return nil, nil
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  DSN(cfg.Database),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info().Str("host", cfg.Database.Host).Str("name", cfg.Database.Name).Msg("Database connected")
	return db, nil
}

// AutoMigrate creates or updates the exams table. No-op for the memory driver.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.Exam{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
