package user

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"starwars-api/internal/shared/database"
	apperrors "starwars-api/internal/shared/errors"
)

const columns = `id, username, email, password`

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing user repository")

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

func (r *Repository) GetAll(ctx context.Context) ([]User, error) {
	logger := r.logger.With("component", "user_repository", "operation", "get_all")

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, `SELECT `+columns+` FROM "user" ORDER BY id`); err != nil {
		logger.Error("Failed to query users", "error", err)
		return nil, apperrors.WrapInternal("failed to query users", err)
	}

	logger.Debug("Users retrieved", "count", len(users))
	return users, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*User, error) {
	logger := r.logger.With("component", "user_repository", "operation", "get_by_id", "user_id", id)

	var u User
	err := r.db.GetContext(ctx, &u, r.db.Rebind(`SELECT `+columns+` FROM "user" WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("user not found with id: %d", id)
		}
		logger.Error("Database error getting user by ID", "error", err)
		return nil, apperrors.WrapInternal("failed to get user", err)
	}

	return &u, nil
}

func (r *Repository) Create(ctx context.Context, u *User, tx *database.Tx) error {
	exec := r.getExecutor(tx)

	logger := r.logger.With("component", "user_repository", "operation", "create", "username", u.Username)

	query := exec.Rebind(`INSERT INTO "user" (username, email, password) VALUES (?, ?, ?) RETURNING id`)
	if err := exec.QueryRowxContext(ctx, query, u.Username, u.Email, u.Password).Scan(&u.ID); err != nil {
		logger.Error("Failed to create user", "error", err)
		return apperrors.WrapInternal("failed to create user", err)
	}

	logger.Debug("User created", "user_id", u.ID)
	return nil
}
