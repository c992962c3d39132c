package movies

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/myflix/myflix-api/internal/models"
)

// urlParam returns a route parameter with percent-encoding removed; titles
// and names routinely contain spaces.
func urlParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Catalog defines the read operations the movie routes need. Lookups return
// nil (serialized as a JSON null) when nothing matches.
type Catalog interface {
	List(ctx context.Context) ([]models.Movie, error)
	GetByTitle(ctx context.Context, title string) (*models.Movie, error)
	GetByGenre(ctx context.Context, name string) (*models.Genre, error)
	GetByDirector(ctx context.Context, name string) (*models.Director, error)
}

// Handler holds the movie catalog HTTP handlers.
type Handler struct {
	catalog Catalog
	log     *zap.Logger
}

func NewHandler(catalog Catalog, log *zap.Logger) *Handler {
	return &Handler{catalog: catalog, log: log}
}

// List returns the full catalog, unfiltered.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.List(r.Context())
	if err != nil {
		h.log.Error("list movies failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Movie{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get returns a single movie by title, or a JSON null when nothing matches.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	movie, err := h.catalog.GetByTitle(r.Context(), urlParam(r, "title"))
	if err != nil {
		h.log.Error("get movie failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

// GetGenre returns the genre sub-object of the first matching movie.
func (h *Handler) GetGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := h.catalog.GetByGenre(r.Context(), urlParam(r, "name"))
	if err != nil {
		h.log.Error("get genre failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, genre)
}

// GetDirector returns the director sub-object of the first matching movie.
func (h *Handler) GetDirector(w http.ResponseWriter, r *http.Request) {
	director, err := h.catalog.GetByDirector(r.Context(), urlParam(r, "name"))
	if err != nil {
		h.log.Error("get director failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, director)
}
