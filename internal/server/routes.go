package server

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"starwars-api/internal/favorite"
	favoriteHandlers "starwars-api/internal/favorite/handlers"
	"starwars-api/internal/middleware"
	"starwars-api/internal/person"
	personHandlers "starwars-api/internal/person/handlers"
	"starwars-api/internal/planet"
	planetHandlers "starwars-api/internal/planet/handlers"
	serverHandlers "starwars-api/internal/server/handlers"
	"starwars-api/internal/shared/config"
	"starwars-api/internal/shared/database"
	"starwars-api/internal/shared/errors"
	"starwars-api/internal/shared/metrics"
	"starwars-api/internal/shared/response"
	"starwars-api/internal/user"
	userHandlers "starwars-api/internal/user/handlers"
)

// Route is one entry of the API route table
type Route struct {
	Method  string
	Pattern string
	Name    string
	Handler http.Handler
}

// Services bundles the domain services the handlers depend on
type Services struct {
	People    *person.Service
	Planets   *planet.Service
	Users     *user.Service
	Favorites *favorite.Service
}

// NewServices wires repositories and services over one storage handle
func NewServices(db *database.DB, logger *slog.Logger) Services {
	return Services{
		People:    person.NewService(person.NewRepository(db, logger), logger),
		Planets:   planet.NewService(planet.NewRepository(db, logger), logger),
		Users:     user.NewService(user.NewRepository(db, logger), logger),
		Favorites: favorite.NewService(favorite.NewRepository(db, logger), logger),
	}
}

type Routes struct {
	db       *database.DB
	services Services
	metrics  *metrics.Metrics
	cfg      *config.Config
	logger   *slog.Logger
}

func NewRoutes(db *database.DB, services Services, m *metrics.Metrics, cfg *config.Config, logger *slog.Logger) *Routes {
	return &Routes{
		db:       db,
		services: services,
		metrics:  m,
		cfg:      cfg,
		logger:   logger,
	}
}

// Table lists every endpoint. The sitemap at / is built from the other entries.
func (r *Routes) Table() []Route {
	people := personHandlers.NewPersonHandler(r.services.People)
	planets := planetHandlers.NewPlanetHandler(r.services.Planets)
	users := userHandlers.NewUserHandler(r.services.Users)
	favorites := favoriteHandlers.NewFavoriteHandler(r.services.Favorites)

	routes := []Route{
		{http.MethodGet, "/people", "list_people", http.HandlerFunc(people.GetPeople)},
		{http.MethodGet, "/people/{id}", "get_person", http.HandlerFunc(people.GetPerson)},
		{http.MethodGet, "/planets", "list_planets", http.HandlerFunc(planets.GetPlanets)},
		{http.MethodGet, "/planets/{id}", "get_planet", http.HandlerFunc(planets.GetPlanet)},
		{http.MethodGet, "/users", "list_users", http.HandlerFunc(users.GetUsers)},
		{http.MethodGet, "/users/favorites", "list_user_favorites", http.HandlerFunc(favorites.GetUserFavorites)},
		{http.MethodPost, "/favorite/planet/{id}", "add_favorite_planet", http.HandlerFunc(favorites.AddFavoritePlanet)},
		{http.MethodDelete, "/favorite/planet/{id}", "delete_favorite_planet", http.HandlerFunc(favorites.DeleteFavoritePlanet)},
		{http.MethodPost, "/favorite/people/{id}", "add_favorite_person", http.HandlerFunc(favorites.AddFavoritePerson)},
		{http.MethodDelete, "/favorite/people/{id}", "delete_favorite_person", http.HandlerFunc(favorites.DeleteFavoritePerson)},
		{http.MethodGet, "/health", "health", serverHandlers.NewHealthHandler(r.db)},
		{http.MethodGet, "/metrics", "metrics", r.metrics.Handler()},
	}

	endpoints := make([]serverHandlers.Endpoint, 0, len(routes)+1)
	endpoints = append(endpoints, serverHandlers.Endpoint{Method: http.MethodGet, Path: "/"})
	for _, route := range routes {
		endpoints = append(endpoints, serverHandlers.Endpoint{Method: route.Method, Path: route.Pattern})
	}

	sitemap := Route{http.MethodGet, "/", "sitemap", serverHandlers.NewSitemapHandler(endpoints)}
	return append([]Route{sitemap}, routes...)
}

// Setup registers the route table on a ServeMux and wraps it in the middleware chain.
// Every path also answers with a trailing slash; unknown paths and methods get JSON errors.
func (r *Routes) Setup() http.Handler {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()
	allowed := make(map[string][]string)
	var paths []string

	table := r.Table()
	for _, route := range table {
		for _, pattern := range patternsFor(route.Pattern) {
			mux.Handle(route.Method+" "+pattern, route.Handler)

			if _, seen := allowed[pattern]; !seen {
				paths = append(paths, pattern)
			}
			allowed[pattern] = append(allowed[pattern], route.Method)
		}
	}

	// Method-less patterns only match when no method-specific route does
	for _, pattern := range paths {
		if pattern == "/{$}" {
			continue
		}
		mux.Handle(pattern, methodNotAllowed(allowed[pattern]))
	}
	mux.Handle("/", methodNotAllowed(allowed["/{$}"]))

	logger.Info("Routes configured successfully", "routes", len(table))

	var handler http.Handler = mux
	handler = middleware.NewCORS(r.cfg.CORS).Middleware(handler)
	handler = middleware.Metrics(r.metrics)(handler)
	handler = middleware.AccessLog(r.cfg.Server.TrustProxy)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

// patternsFor returns the exact pattern plus its trailing slash variant
func patternsFor(pattern string) []string {
	if pattern == "/" {
		return []string{"/{$}"}
	}
	return []string{pattern, strings.TrimSuffix(pattern, "/") + "/{$}"}
}

// methodNotAllowed answers requests whose path matched but whose method did not.
// The root catch-all also receives unknown paths, which get a 404.
func methodNotAllowed(methods []string) http.Handler {
	methods = slices.Clone(methods)
	if slices.Contains(methods, http.MethodGet) {
		methods = append(methods, http.MethodHead)
	}
	allow := strings.Join(methods, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With("handler", "fallback")

		if r.Pattern == "/" && r.URL.Path != "/" {
			response.Error(w, r, logger, errors.NotFoundf("no route for %s", r.URL.Path))
			return
		}

		w.Header().Set("Allow", allow)
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	})
}
