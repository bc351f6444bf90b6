package database

import (
	"fmt"
	"log"
	"time"

	"hotel-rooms-backend/internal/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dialectorFor picks the gorm dialect for the guest store. Supabase is
// Postgres; mysql and sqlite are kept for local runs.
func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres", "postgresql", "supabase":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported guest database driver %q", driver)
	}
}

// ConnectRelational initializes the GORM connection used by the guest store
func ConnectRelational(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Guests.Driver, cfg.Guests.DSN)
	if err != nil {
		return nil, err
	}

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open guest database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get guest database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping guest database: %w", err)
	}

	log.Printf("Successfully connected to guest database (%s)", cfg.Guests.Driver)
	return db, nil
}

// RelationalCloser returns the function that releases the pool behind db
func RelationalCloser(db *gorm.DB) (func() error, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get guest database instance: %w", err)
	}
	return sqlDB.Close, nil
}
