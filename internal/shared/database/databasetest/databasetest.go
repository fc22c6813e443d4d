// Package databasetest builds storage handles for tests.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"

	"starwars-api/internal/shared/config"
	"starwars-api/internal/shared/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// New opens a migrated SQLite database in a per-test temporary directory
func New(t testing.TB) *database.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		SQLitePath:   filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg)
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.RunMigrations(ctx), "failed to run migrations")

	return db
}

// NewMock returns a handle backed by sqlmock using the sqlite bindvar style.
// Pings are monitored and need an ExpectPing.
func NewMock(t testing.TB) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err, "sqlmock new")
	t.Cleanup(func() { _ = sqlDB.Close() })

	return database.Wrap(sqlDB, config.DriverSQLite), mock
}
