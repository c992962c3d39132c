package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/myflix/myflix-api/internal/auth"
	"github.com/myflix/myflix-api/internal/config"
	"github.com/myflix/myflix-api/internal/models"
	"github.com/myflix/myflix-api/internal/movies"
	"github.com/myflix/myflix-api/internal/store"
	"github.com/myflix/myflix-api/internal/users"
)

// memoryStore backs every handler in router tests: it satisfies both the
// users and auth store interfaces.
type memoryStore struct {
	users map[string]*models.User
}

func (m *memoryStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	u := *user
	u.ID = primitive.NewObjectID()
	if u.Favorites == nil {
		u.Favorites = []primitive.ObjectID{}
	}
	m.users[u.Username] = &u
	out := u
	return &out, nil
}

func (m *memoryStore) List(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memoryStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (m *memoryStore) Update(_ context.Context, username string, _ bson.M) (*models.User, error) {
	return m.GetByUsername(context.Background(), username)
}

func (m *memoryStore) AddFavorite(_ context.Context, username string, _ primitive.ObjectID) (*models.User, error) {
	return m.GetByUsername(context.Background(), username)
}

func (m *memoryStore) RemoveFavorite(_ context.Context, username string, _ primitive.ObjectID) (*models.User, error) {
	return m.GetByUsername(context.Background(), username)
}

func (m *memoryStore) Delete(_ context.Context, username string) (bool, error) {
	_, ok := m.users[username]
	delete(m.users, username)
	return ok, nil
}

// memoryCatalog serves the seed fixture.
type memoryCatalog struct {
	movies []models.Movie
}

func (c *memoryCatalog) List(_ context.Context) ([]models.Movie, error) {
	return c.movies, nil
}

func (c *memoryCatalog) GetByTitle(_ context.Context, title string) (*models.Movie, error) {
	for i := range c.movies {
		if c.movies[i].Title == title {
			return &c.movies[i], nil
		}
	}
	return nil, nil
}

func (c *memoryCatalog) GetByGenre(context.Context, string) (*models.Genre, error) {
	return nil, nil
}

func (c *memoryCatalog) GetByDirector(context.Context, string) (*models.Director, error) {
	return nil, nil
}

func newTestRouter(authDisabled bool) (http.Handler, *auth.Tokens) {
	cfg := &config.Config{
		Port:           "8080",
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		AuthDisabled:   authDisabled,
		AllowedOrigins: []string{"http://localhost:1234"},
	}
	log := zap.NewNop()
	st := &memoryStore{users: map[string]*models.User{}}
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	r := NewRouter(cfg, log, tokens,
		auth.NewHandler(st, tokens, log),
		users.NewHandler(st, log),
		movies.NewHandler(&memoryCatalog{movies: store.SeedMovies()}, log),
	)
	return r, tokens
}

func do(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGatedModeRequiresToken(t *testing.T) {
	router, tokens := newTestRouter(false)

	for _, path := range []string{"/movies", "/users", "/users/abcde"} {
		rec := do(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	raw, err := tokens.Issue(&models.User{ID: primitive.NewObjectID(), Username: "abcde"})
	require.NoError(t, err)
	rec := do(router, http.MethodGet, "/movies", raw, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGatedModeKeepsRegistrationAndLoginPublic(t *testing.T) {
	router, _ := newTestRouter(false)

	rec := do(router, http.MethodPost, "/users", "",
		`{"username":"abcde","password":"p1","email":"a@b.com"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(router, http.MethodPost, "/login", "",
		`{"username":"abcde","password":"p1"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestPublicModeNeedsNoToken(t *testing.T) {
	router, _ := newTestRouter(true)

	for _, path := range []string{"/movies", "/movies/A%20New%20Hope", "/users"} {
		rec := do(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(false)

	rec := do(router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
