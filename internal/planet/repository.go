package planet

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"starwars-api/internal/shared/database"
	apperrors "starwars-api/internal/shared/errors"
)

const columns = "id, name, diameter, rotation_period, orbital_period, population, surface_water, gravity, climate, terrain"

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing planet repository")

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

func (r *Repository) GetAll(ctx context.Context) ([]Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_all")
	logger.Debug("Retrieving all planets")

	planets := []Planet{}
	if err := r.db.SelectContext(ctx, &planets, "SELECT "+columns+" FROM planet ORDER BY id"); err != nil {
		logger.Error("Failed to query planets", "error", err)
		return nil, apperrors.WrapInternal("failed to query planets", err)
	}

	logger.Debug("Planets retrieved", "count", len(planets))
	return planets, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_by_id", "planet_id", id)
	logger.Debug("Getting planet by ID")

	var planet Planet
	err := r.db.GetContext(ctx, &planet, r.db.Rebind("SELECT "+columns+" FROM planet WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("planet not found with id: %d", id)
		}
		logger.Error("Database error getting planet by ID", "error", err)
		return nil, apperrors.WrapInternal("failed to get planet", err)
	}

	return &planet, nil
}

// Create stores p and fills in its generated ID
func (r *Repository) Create(ctx context.Context, p *Planet, tx *database.Tx) error {
	exec := r.getExecutor(tx)

	logger := r.logger.With("component", "planet_repository", "operation", "create", "name", p.Name)

	query := exec.Rebind(`
		INSERT INTO planet (name, diameter, rotation_period, orbital_period, population, surface_water, gravity, climate, terrain)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := exec.QueryRowxContext(ctx, query,
		p.Name, p.Diameter, p.RotationPeriod, p.OrbitalPeriod, p.Population, p.SurfaceWater, p.Gravity, p.Climate, p.Terrain,
	).Scan(&p.ID)
	if err != nil {
		logger.Error("Failed to create planet", "error", err)
		return apperrors.WrapInternal("failed to create planet", err)
	}

	logger.Debug("Planet created", "planet_id", p.ID)
	return nil
}
