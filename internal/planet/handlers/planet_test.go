package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"starwars-api/internal/planet"
	"starwars-api/internal/shared/database/databasetest"
	"starwars-api/internal/shared/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T, seed ...*planet.Planet) *http.ServeMux {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := planet.NewRepository(databasetest.New(t), logger)
	for _, p := range seed {
		require.NoError(t, repo.Create(context.Background(), p, nil))
	}

	h := NewPlanetHandler(planet.NewService(repo, logger))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /planets", h.GetPlanets)
	mux.HandleFunc("GET /planets/{id}", h.GetPlanet)
	return mux
}

func TestGetPlanets(t *testing.T) {
	mux := newTestMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/planets", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetPlanet(t *testing.T) {
	mux := newTestMux(t, &planet.Planet{Name: "Tatooine", Population: 200000, Climate: "arid", Terrain: "desert"})

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/planets/1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var p planet.Planet
		require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
		assert.Equal(t, "Tatooine", p.Name)
		assert.Equal(t, int64(200000), p.Population)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/planets/2", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
		var body response.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "planet not found with id: 2", body.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/planets/tatooine", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body response.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "invalid planet ID format", body.Message)
	})
}
