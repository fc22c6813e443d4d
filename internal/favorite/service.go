package favorite

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   *Repository
	logger *slog.Logger
}

func NewService(repo *Repository, logger *slog.Logger) *Service {
	logger.Debug("Initializing favorite service")

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetUserFavorites returns both favorite lists of a user. An unknown user
// simply has no favorites.
func (s *Service) GetUserFavorites(ctx context.Context, userID int) (*UserFavorites, error) {
	people, err := s.repo.GetPeopleByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	planets, err := s.repo.GetPlanetsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserFavorites{
		FavoritePeople:  people,
		FavoritePlanets: planets,
	}, nil
}

func (s *Service) AddFavoritePerson(ctx context.Context, userID, personID int) (*FavoritePeople, error) {
	return s.repo.CreateFavoritePerson(ctx, userID, personID)
}

func (s *Service) AddFavoritePlanet(ctx context.Context, userID, planetID int) (*FavoritePlanet, error) {
	return s.repo.CreateFavoritePlanet(ctx, userID, planetID)
}

func (s *Service) RemoveFavoritePerson(ctx context.Context, userID, personID int) error {
	if err := s.repo.DeleteFavoritePerson(ctx, userID, personID); err != nil {
		return err
	}

	s.logger.Info("Favorite person removed", "user_id", userID, "person_id", personID)
	return nil
}

func (s *Service) RemoveFavoritePlanet(ctx context.Context, userID, planetID int) error {
	if err := s.repo.DeleteFavoritePlanet(ctx, userID, planetID); err != nil {
		return err
	}

	s.logger.Info("Favorite planet removed", "user_id", userID, "planet_id", planetID)
	return nil
}
