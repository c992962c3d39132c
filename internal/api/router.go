package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/myflix/myflix-api/internal/auth"
	"github.com/myflix/myflix-api/internal/config"
	"github.com/myflix/myflix-api/internal/middleware"
	"github.com/myflix/myflix-api/internal/movies"
	"github.com/myflix/myflix-api/internal/users"
)

// NewRouter assembles the full route table. With cfg.AuthDisabled every
// route is public, matching the earliest iteration of the service; otherwise
// everything except registration, login, and the health check requires a
// verified bearer token.
func NewRouter(
	cfg *config.Config,
	log *zap.Logger,
	tokens *auth.Tokens,
	authHandler *auth.Handler,
	userHandler *users.Handler,
	movieHandler *movies.Handler,
) chi.Router {
	requireAuth := middleware.RequireAuth(tokens)
	if cfg.AuthDisabled {
		requireAuth = func(next http.Handler) http.Handler { return next }
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Login (public in both modes)
	r.Post("/login", authHandler.Login)

	// Movie catalog (read-only)
	r.Route("/movies", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", movieHandler.List)
		r.Get("/genres/{name}", movieHandler.GetGenre)
		r.Get("/directors/{name}", movieHandler.GetDirector)
		r.Get("/{title}", movieHandler.Get)
	})

	// User management; registration is the one public user route
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Register)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", userHandler.List)
			r.Get("/{username}", userHandler.Get)
			r.Put("/{username}", userHandler.Update)
			r.Delete("/{username}", userHandler.Delete)
			r.Post("/{username}/movies/{movieID}", userHandler.AddFavorite)
			r.Delete("/{username}/movies/{movieID}", userHandler.RemoveFavorite)
		})
	})

	return r
}
