package handlers

import (
	"log/slog"
	"net/http"

	"starwars-api/internal/favorite"
	"starwars-api/internal/shared/request"
	"starwars-api/internal/shared/response"
)

const userIDField = "user_id"

type FavoriteHandler struct {
	service *favorite.Service
}

func NewFavoriteHandler(service *favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// GetUserFavorites handles GET /users/favorites?user_id=N
func (h *FavoriteHandler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_user_favorites")

	userID, err := request.QueryInt(r, userIDField)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	favorites, err := h.service.GetUserFavorites(r.Context(), userID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, favorites)
}

// AddFavoritePlanet handles POST /favorite/planet/{id}
func (h *FavoriteHandler) AddFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "add_favorite_planet")

	userID, planetID, err := h.parseTarget(w, r, "planet")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	fav, err := h.service.AddFavoritePlanet(r.Context(), userID, planetID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, fav)
}

// AddFavoritePerson handles POST /favorite/people/{id}
func (h *FavoriteHandler) AddFavoritePerson(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "add_favorite_person")

	userID, personID, err := h.parseTarget(w, r, "person")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	fav, err := h.service.AddFavoritePerson(r.Context(), userID, personID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, fav)
}

// DeleteFavoritePlanet handles DELETE /favorite/planet/{id}
func (h *FavoriteHandler) DeleteFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "delete_favorite_planet")

	userID, planetID, err := h.parseTarget(w, r, "planet")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.RemoveFavoritePlanet(r.Context(), userID, planetID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, favorite.DeleteResult{Done: true})
}

// DeleteFavoritePerson handles DELETE /favorite/people/{id}
func (h *FavoriteHandler) DeleteFavoritePerson(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "delete_favorite_person")

	userID, personID, err := h.parseTarget(w, r, "person")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.RemoveFavoritePerson(r.Context(), userID, personID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, favorite.DeleteResult{Done: true})
}

// parseTarget reads the {id} path value and the user_id body field
func (h *FavoriteHandler) parseTarget(w http.ResponseWriter, r *http.Request, label string) (userID, entityID int, err error) {
	entityID, err = request.PathInt(r, "id", label)
	if err != nil {
		return 0, 0, err
	}

	body, err := request.ReadBody(w, r)
	if err != nil {
		return 0, 0, err
	}

	userID, err = request.BodyInt(body, userIDField)
	if err != nil {
		return 0, 0, err
	}

	return userID, entityID, nil
}
