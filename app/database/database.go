package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mytheresa/supplier-catalog-chat/app/config"
	"github.com/mytheresa/supplier-catalog-chat/models"
)

// Initial and maximum wait between connection attempts.
var (
	retryInitialInterval = 500 * time.Millisecond
	retryMaxInterval     = 5 * time.Second
)

// Open connects to the configured database, retrying with exponential backoff
// until cfg.ConnectAttempts is exhausted, and runs migrations when enabled.
func Open(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.New(&log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInitialInterval
	bo.MaxInterval = retryMaxInterval

	db, err := backoff.Retry(ctx, func() (*gorm.DB, error) {
		dialector, err := newDialector(cfg)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return connect(dialector, gormCfg)
	},
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(cfg.ConnectAttempts)),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn().Err(err).Str("driver", cfg.Driver).Dur("retry_in", next).Msg("database not reachable")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.Driver == "sqlite" {
		// sqlite allows one writer, and each :memory: connection is its own database.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}

	log.Info().Str("driver", cfg.Driver).Msg("database connected")
	return db, nil
}

// connect opens one connection pool. gorm.Open returns the pool alongside the
// error when only the initial ping fails, so it is closed here before a retry.
func connect(dialector gorm.Dialector, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		if db != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				sqlDB.Close()
			}
		}
		return nil, err
	}
	return db, nil
}

func newDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		// DriverName selects lib/pq instead of gorm's default pgx stdlib driver.
		return postgres.New(postgres.Config{DriverName: "postgres", DSN: cfg.DSN}), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate creates or updates the suppliers and products tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Supplier{}, &models.Product{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
