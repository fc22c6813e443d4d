// Package seed loads a sample dataset of people, planets and users.
package seed

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"starwars-api/internal/person"
	"starwars-api/internal/planet"
	"starwars-api/internal/shared/database"
	"starwars-api/internal/user"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var defaultData []byte

type Dataset struct {
	People  []person.Person `yaml:"people"`
	Planets []planet.Planet `yaml:"planets"`
	Users   []user.User     `yaml:"users"`
}

// Parse decodes a YAML dataset
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &ds, nil
}

// LoadFile reads the dataset at path, or the embedded one when path is empty
func LoadFile(path string) (*Dataset, error) {
	if path == "" {
		return Parse(defaultData)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

type Seeder struct {
	db      *database.DB
	people  *person.Service
	planets *planet.Service
	users   *user.Service
	logger  *slog.Logger
}

func NewSeeder(db *database.DB, people *person.Service, planets *planet.Service, users *user.Service, logger *slog.Logger) *Seeder {
	return &Seeder{
		db:      db,
		people:  people,
		planets: planets,
		users:   users,
		logger:  logger,
	}
}

// Run inserts ds in a single transaction unless the store already holds
// people. It reports whether anything was inserted.
func (s *Seeder) Run(ctx context.Context, ds *Dataset) (bool, error) {
	logger := s.logger.With("component", "seed", "operation", "run")

	existing, err := s.people.GetAll(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		logger.Info("Store already seeded, skipping", "people", len(existing))
		return false, nil
	}

	tx, err := s.db.BeginTxContext(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.Error("Failed to rollback seed transaction", "error", err)
		}
	}()

	for i := range ds.People {
		if err := s.people.Create(ctx, &ds.People[i], tx); err != nil {
			return false, fmt.Errorf("seed person %q: %w", ds.People[i].Name, err)
		}
	}

	for i := range ds.Planets {
		if err := s.planets.Create(ctx, &ds.Planets[i], tx); err != nil {
			return false, fmt.Errorf("seed planet %q: %w", ds.Planets[i].Name, err)
		}
	}

	for i := range ds.Users {
		if err := s.users.Create(ctx, &ds.Users[i], tx); err != nil {
			return false, fmt.Errorf("seed user %q: %w", ds.Users[i].Username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed data: %w", err)
	}

	logger.Info("Seed data inserted",
		"people", len(ds.People),
		"planets", len(ds.Planets),
		"users", len(ds.Users),
	)
	return true, nil
}
