package user

import (
	"context"
	"log/slog"

	"starwars-api/internal/shared/database"
)

type Service struct {
	repo   *Repository
	logger *slog.Logger
}

func NewService(repo *Repository, logger *slog.Logger) *Service {
	logger.Debug("Initializing user service")

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

// Create stores u inside tx when one is given
func (s *Service) Create(ctx context.Context, u *User, tx *database.Tx) error {
	return s.repo.Create(ctx, u, tx)
}
