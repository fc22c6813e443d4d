package person

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
	logger.Debug("Initializing person service")

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]Person, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (*Person, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores p inside tx when one is given
func (s *Service) Create(ctx context.Context, p *Person, tx *database.Tx) error {
	return s.repo.Create(ctx, p, tx)
}
