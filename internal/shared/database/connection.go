package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"starwars-api/internal/shared/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the storage handle shared by every repository.
type DB struct {
	*sqlx.DB
}

type Tx struct {
	*sqlx.Tx
}

// Executor is satisfied by both *DB and *Tx so repositories can run inside
// or outside a transaction.
type Executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

func (db *DB) BeginTxContext(ctx context.Context) (*Tx, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &Tx{tx}, nil
}

// Wrap adopts an already opened connection pool, e.g. one created by sqlmock
func Wrap(sqlDB *sql.DB, driver string) *DB {
	return &DB{sqlx.NewDb(sqlDB, driver)}
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	logger := slog.With("component", "database", "operation", "connect")
	logger.Debug("Initializing database connection")

	driver, dsn, err := cfg.Source()
	if err != nil {
		logger.Error("Invalid database configuration", "error", err)
		return nil, err
	}

	logger.Info("Connecting to database",
		"driver", driver,
		"embedded", driver == config.DriverSQLite,
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	sqlDB, err := sqlx.Open(driver, dsn)
	if err != nil {
		logger.Error("Failed to open database connection", "error", err, "driver", driver)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	logger.Debug("Testing database connection with ping")
	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Error("Failed to ping database", "error", err, "driver", driver)
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Error("Failed to close database after ping failure", "close_error", closeErr, "ping_error", err)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established successfully", "driver", driver)

	return &DB{sqlDB}, nil
}

