package movies

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/myflix/myflix-api/internal/models"
	"github.com/myflix/myflix-api/internal/store"
)

// fakeCatalog serves the seed catalog from memory with the store's
// first-match, nil-on-miss lookup semantics.
type fakeCatalog struct {
	movies []models.Movie
}

func (f *fakeCatalog) List(_ context.Context) ([]models.Movie, error) {
	return f.movies, nil
}

func (f *fakeCatalog) GetByTitle(_ context.Context, title string) (*models.Movie, error) {
	for i := range f.movies {
		if f.movies[i].Title == title {
			return &f.movies[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) GetByGenre(_ context.Context, name string) (*models.Genre, error) {
	for i := range f.movies {
		if f.movies[i].Genre.Name == name {
			return &f.movies[i].Genre, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) GetByDirector(_ context.Context, name string) (*models.Director, error) {
	for i := range f.movies {
		if f.movies[i].Director.Name == name {
			return &f.movies[i].Director, nil
		}
	}
	return nil, nil
}

// failingCatalog simulates a store outage.
type failingCatalog struct{}

var errOutage = errors.New("connection reset by mongod")

func (failingCatalog) List(context.Context) ([]models.Movie, error) { return nil, errOutage }
func (failingCatalog) GetByTitle(context.Context, string) (*models.Movie, error) {
	return nil, errOutage
}
func (failingCatalog) GetByGenre(context.Context, string) (*models.Genre, error) {
	return nil, errOutage
}
func (failingCatalog) GetByDirector(context.Context, string) (*models.Director, error) {
	return nil, errOutage
}

func newTestRouter(c Catalog) http.Handler {
	h := NewHandler(c, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/movies", h.List)
	r.Get("/movies/genres/{name}", h.GetGenre)
	r.Get("/movies/directors/{name}", h.GetDirector)
	r.Get("/movies/{title}", h.Get)
	return r
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListReturnsFullCatalog(t *testing.T) {
	router := newTestRouter(&fakeCatalog{movies: store.SeedMovies()})

	rec := get(router, "/movies")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 10)
}

func TestGetByTitle(t *testing.T) {
	router := newTestRouter(&fakeCatalog{movies: store.SeedMovies()})

	rec := get(router, "/movies/A%20New%20Hope")
	require.Equal(t, http.StatusOK, rec.Code)

	var m models.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, "A New Hope", m.Title)
	assert.Equal(t, "George Lucas", m.Director.Name)
}

func TestGetMissingTitleReturnsNull(t *testing.T) {
	router := newTestRouter(&fakeCatalog{movies: store.SeedMovies()})

	rec := get(router, "/movies/Nonexistent")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestGetGenre(t *testing.T) {
	router := newTestRouter(&fakeCatalog{movies: store.SeedMovies()})

	rec := get(router, "/movies/genres/Science%20Fiction")
	require.Equal(t, http.StatusOK, rec.Code)

	var g models.Genre
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Equal(t, "Science Fiction", g.Name)
	assert.NotEmpty(t, g.Description)
}

func TestGetDirector(t *testing.T) {
	router := newTestRouter(&fakeCatalog{movies: store.SeedMovies()})

	rec := get(router, "/movies/directors/George%20Lucas")
	require.Equal(t, http.StatusOK, rec.Code)

	var d models.Director
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, 1944, d.BirthYear)
}

func TestGetMissingGenreReturnsNull(t *testing.T) {
	router := newTestRouter(&fakeCatalog{movies: store.SeedMovies()})

	rec := get(router, "/movies/genres/Slapstick")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestStoreErrorsAreNotLeaked(t *testing.T) {
	router := newTestRouter(failingCatalog{})

	for _, path := range []string{
		"/movies",
		"/movies/A%20New%20Hope",
		"/movies/genres/Science%20Fiction",
		"/movies/directors/George%20Lucas",
	} {
		rec := get(router, path)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "internal server error", path)
		assert.NotContains(t, rec.Body.String(), "mongod", path)
	}
}
