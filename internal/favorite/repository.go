package favorite

import (
	"context"
	"fmt"
	"log/slog"

	"starwars-api/internal/shared/database"
	apperrors "starwars-api/internal/shared/errors"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing favorite repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetPeopleByUserID(ctx context.Context, userID int) ([]FavoritePeople, error) {
	logger := r.logger.With("component", "favorite_repository", "operation", "get_people_by_user", "user_id", userID)

	favorites := []FavoritePeople{}
	query := r.db.Rebind("SELECT id, user_id, person_id FROM favorite_people WHERE user_id = ? ORDER BY id")
	if err := r.db.SelectContext(ctx, &favorites, query, userID); err != nil {
		logger.Error("Failed to query favorite people", "error", err)
		return nil, apperrors.WrapInternal("failed to query favorite people", err)
	}

	return favorites, nil
}

func (r *Repository) GetPlanetsByUserID(ctx context.Context, userID int) ([]FavoritePlanet, error) {
	logger := r.logger.With("component", "favorite_repository", "operation", "get_planets_by_user", "user_id", userID)

	favorites := []FavoritePlanet{}
	query := r.db.Rebind("SELECT id, user_id, planet_id FROM favorite_planets WHERE user_id = ? ORDER BY id")
	if err := r.db.SelectContext(ctx, &favorites, query, userID); err != nil {
		logger.Error("Failed to query favorite planets", "error", err)
		return nil, apperrors.WrapInternal("failed to query favorite planets", err)
	}

	return favorites, nil
}

// CreateFavoritePerson inserts a new row even when the same pair already exists.
func (r *Repository) CreateFavoritePerson(ctx context.Context, userID, personID int) (*FavoritePeople, error) {
	logger := r.logger.With("component", "favorite_repository", "operation", "create_person",
		"user_id", userID, "person_id", personID)

	fav := &FavoritePeople{UserID: userID, PersonID: personID}
	query := r.db.Rebind("INSERT INTO favorite_people (user_id, person_id) VALUES (?, ?) RETURNING id")
	if err := r.db.QueryRowxContext(ctx, query, userID, personID).Scan(&fav.ID); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, apperrors.WrapValidation(fmt.Sprintf("user %d or person %d does not exist", userID, personID), err)
		}
		logger.Error("Failed to create favorite person", "error", err)
		return nil, apperrors.WrapInternal("failed to create favorite person", err)
	}

	logger.Debug("Favorite person created", "favorite_id", fav.ID)
	return fav, nil
}

// CreateFavoritePlanet inserts a new row even when the same pair already exists.
func (r *Repository) CreateFavoritePlanet(ctx context.Context, userID, planetID int) (*FavoritePlanet, error) {
	logger := r.logger.With("component", "favorite_repository", "operation", "create_planet",
		"user_id", userID, "planet_id", planetID)

	fav := &FavoritePlanet{UserID: userID, PlanetID: planetID}
	query := r.db.Rebind("INSERT INTO favorite_planets (user_id, planet_id) VALUES (?, ?) RETURNING id")
	if err := r.db.QueryRowxContext(ctx, query, userID, planetID).Scan(&fav.ID); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, apperrors.WrapValidation(fmt.Sprintf("user %d or planet %d does not exist", userID, planetID), err)
		}
		logger.Error("Failed to create favorite planet", "error", err)
		return nil, apperrors.WrapInternal("failed to create favorite planet", err)
	}

	logger.Debug("Favorite planet created", "favorite_id", fav.ID)
	return fav, nil
}

// DeleteFavoritePerson removes the oldest matching row only.
func (r *Repository) DeleteFavoritePerson(ctx context.Context, userID, personID int) error {
	query := r.db.Rebind(`
		DELETE FROM favorite_people
		WHERE id = (SELECT id FROM favorite_people WHERE user_id = ? AND person_id = ? ORDER BY id LIMIT 1)
	`)

	return r.deleteOne(ctx, "delete_person", query, userID, personID,
		"favorite person %d not found for user %d")
}

// DeleteFavoritePlanet removes the oldest matching row only.
func (r *Repository) DeleteFavoritePlanet(ctx context.Context, userID, planetID int) error {
	query := r.db.Rebind(`
		DELETE FROM favorite_planets
		WHERE id = (SELECT id FROM favorite_planets WHERE user_id = ? AND planet_id = ? ORDER BY id LIMIT 1)
	`)

	return r.deleteOne(ctx, "delete_planet", query, userID, planetID,
		"favorite planet %d not found for user %d")
}

func (r *Repository) deleteOne(ctx context.Context, operation, query string, userID, entityID int, notFound string) error {
	logger := r.logger.With("component", "favorite_repository", "operation", operation,
		"user_id", userID, "entity_id", entityID)

	result, err := r.db.ExecContext(ctx, query, userID, entityID)
	if err != nil {
		logger.Error("Failed to delete favorite", "error", err)
		return apperrors.WrapInternal("failed to delete favorite", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.Error("Failed to get rows affected", "error", err)
		return apperrors.WrapInternal("failed to delete favorite", err)
	}

	if rows == 0 {
		return apperrors.NotFoundf(notFound, entityID, userID)
	}

	logger.Debug("Favorite deleted")
	return nil
}
