package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sbtvjoe-max/UniChat1.1/internal/config"
	"github.com/sbtvjoe-max/UniChat1.1/internal/models"
)

// New creates a new database connection based on configuration
func New(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	dsn := cfg.ResolveDSN()

	switch cfg.Driver {
	case "sqlite":
		// WAL mode and a busy timeout for better concurrency
		dialector = sqlite.Open(dsn + "?_journal_mode=WAL&_busy_timeout=5000")
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// WAL allows concurrent reads but only one writer; a single
		// connection avoids lock contention entirely.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		slog.Info("Configured SQLite with WAL mode and single connection")
	} else {
		maxIdleConns := cfg.MaxIdleConns
		if maxIdleConns <= 0 {
			maxIdleConns = 10
		}
		maxOpenConns := cfg.MaxOpenConns
		if maxOpenConns <= 0 {
			maxOpenConns = 100
		}
		connMaxLifetime := cfg.ConnMaxLifetime
		if connMaxLifetime <= 0 {
			connMaxLifetime = 60 // minutes
		}

		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Minute)

		slog.Info("Configured PostgreSQL connection pool",
			"max_idle_conns", maxIdleConns,
			"max_open_conns", maxOpenConns,
			"conn_max_lifetime_min", connMaxLifetime)
	}

	return db, nil
}

// Migrate runs database migrations. The scaffold owns no application
// schema; the only managed table is the server config key-value store.
func Migrate(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	if err := db.AutoMigrate(&models.ServerConfig{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
