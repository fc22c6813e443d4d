package seed

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"starwars-api/internal/person"
	"starwars-api/internal/planet"
	"starwars-api/internal/shared/database"
	"starwars-api/internal/shared/database/databasetest"
	"starwars-api/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeeder(db *database.DB, logger *slog.Logger) *Seeder {
	return NewSeeder(db,
		person.NewService(person.NewRepository(db, logger), logger),
		planet.NewService(planet.NewRepository(db, logger), logger),
		user.NewService(user.NewRepository(db, logger), logger),
		logger,
	)
}

func TestEmbeddedDataset(t *testing.T) {
	ds, err := LoadFile("")
	require.NoError(t, err)

	assert.Len(t, ds.People, 5)
	assert.Len(t, ds.Planets, 5)
	assert.Len(t, ds.Users, 3)

	assert.Equal(t, "Darth Vader", ds.People[3].Name)
	assert.Equal(t, int64(4500000000), ds.Planets[4].Population)
	assert.Equal(t, "help-me-obi-wan", ds.Users[1].Password)
	for _, p := range ds.People {
		assert.Zero(t, p.ID)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
people:
  - name: Yoda
    height: 66
    mass: 17
`), 0o600))

	ds, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, ds.People, 1)
	assert.Equal(t, "Yoda", ds.People[0].Name)
	assert.Empty(t, ds.Planets)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("people: [unterminated"))
	assert.Error(t, err)
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := databasetest.New(t)
	seeder := newTestSeeder(db, logger)

	ds, err := LoadFile("")
	require.NoError(t, err)

	inserted, err := seeder.Run(ctx, ds)
	require.NoError(t, err)
	assert.True(t, inserted)

	vader, err := person.NewRepository(db, logger).GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Darth Vader", vader.Name)

	planets, err := planet.NewRepository(db, logger).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 5)

	users, err := user.NewRepository(db, logger).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	again, err := LoadFile("")
	require.NoError(t, err)
	inserted, err = seeder.Run(ctx, again)
	require.NoError(t, err)
	assert.False(t, inserted)

	people, err := person.NewRepository(db, logger).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, people, 5)
}

func TestSeeder_RunRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := databasetest.New(t)
	seeder := newTestSeeder(db, logger)

	_, err := db.ExecContext(ctx, `CREATE TRIGGER fail_planet_insert BEFORE INSERT ON planet
BEGIN
	SELECT RAISE(ABORT, 'disk full');
END`)
	require.NoError(t, err)

	ds, err := LoadFile("")
	require.NoError(t, err)

	inserted, err := seeder.Run(ctx, ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed planet")
	assert.False(t, inserted)

	people, err := person.NewRepository(db, logger).GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, people)

	_, err = db.ExecContext(ctx, "DROP TRIGGER fail_planet_insert")
	require.NoError(t, err)

	retry, err := LoadFile("")
	require.NoError(t, err)
	inserted, err = seeder.Run(ctx, retry)
	require.NoError(t, err)
	assert.True(t, inserted)

	people, err = person.NewRepository(db, logger).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, people, 5)

	planets, err := planet.NewRepository(db, logger).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 5)

	users, err := user.NewRepository(db, logger).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}
