package person

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"starwars-api/internal/shared/database"
	apperrors "starwars-api/internal/shared/errors"
)

const columns = "id, name, hair_color, eye_color, skin_color, gender, specie, home_world, height, mass"

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing person repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) getExecutor(tx *database.Tx) database.Executor {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *Repository) GetAll(ctx context.Context) ([]Person, error) {
	logger := r.logger.With("component", "person_repository", "operation", "get_all")
	logger.Debug("Retrieving all people")

	people := []Person{}
	if err := r.db.SelectContext(ctx, &people, "SELECT "+columns+" FROM person ORDER BY id"); err != nil {
		logger.Error("Failed to query people", "error", err)
		return nil, apperrors.WrapInternal("failed to query people", err)
	}

	logger.Debug("People retrieved", "count", len(people))
	return people, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*Person, error) {
	logger := r.logger.With("component", "person_repository", "operation", "get_by_id", "person_id", id)
	logger.Debug("Getting person by ID")

	var person Person
	err := r.db.GetContext(ctx, &person, r.db.Rebind("SELECT "+columns+" FROM person WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("person not found with id: %d", id)
		}
		logger.Error("Database error getting person by ID", "error", err)
		return nil, apperrors.WrapInternal("failed to get person", err)
	}

	return &person, nil
}

// Create stores p and fills in its generated ID
func (r *Repository) Create(ctx context.Context, p *Person, tx *database.Tx) error {
	exec := r.getExecutor(tx)

	logger := r.logger.With("component", "person_repository", "operation", "create", "name", p.Name)

	query := exec.Rebind(`
		INSERT INTO person (name, hair_color, eye_color, skin_color, gender, specie, home_world, height, mass)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := exec.QueryRowxContext(ctx, query,
		p.Name, p.HairColor, p.EyeColor, p.SkinColor, p.Gender, p.Specie, p.HomeWorld, p.Height, p.Mass,
	).Scan(&p.ID)
	if err != nil {
		logger.Error("Failed to create person", "error", err)
		return apperrors.WrapInternal("failed to create person", err)
	}

	logger.Debug("Person created", "person_id", p.ID)
	return nil
}
