package handlers

import (
	"log/slog"
	"net/http"

	"starwars-api/internal/planet"
	"starwars-api/internal/shared/request"
	"starwars-api/internal/shared/response"
)

type PlanetHandler struct {
	service *planet.Service
}

func NewPlanetHandler(service *planet.Service) *PlanetHandler {
	return &PlanetHandler{service: service}
}

// GetPlanets handles GET /planets
func (h *PlanetHandler) GetPlanets(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_planets")

	planets, err := h.service.GetAll(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, planets)
}

// GetPlanet handles GET /planets/{id}
func (h *PlanetHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_planet")

	id, err := request.PathInt(r, "id", "planet")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, p)
}
