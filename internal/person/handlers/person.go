package handlers

import (
	"log/slog"
	"net/http"

	"starwars-api/internal/person"
	"starwars-api/internal/shared/request"
	"starwars-api/internal/shared/response"
)

type PersonHandler struct {
	service *person.Service
}

func NewPersonHandler(service *person.Service) *PersonHandler {
	return &PersonHandler{service: service}
}

// GetPeople handles GET /people
func (h *PersonHandler) GetPeople(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_people")

	people, err := h.service.GetAll(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, people)
}

// GetPerson handles GET /people/{id}
func (h *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_person")

	id, err := request.PathInt(r, "id", "person")
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
