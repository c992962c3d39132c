package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/myflix/myflix-api/internal/auth"
	"github.com/myflix/myflix-api/internal/models"
	"github.com/myflix/myflix-api/internal/store"
	"github.com/myflix/myflix-api/internal/validate"
)

const birthdayLayout = "2006-01-02"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// UserStore defines the persistence operations the user routes need. Lookups
// and merges return nil when no user matches.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, username string, fields bson.M) (*models.User, error)
	AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
	RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
	Delete(ctx context.Context, username string) (bool, error)
}

// Handler holds the user management HTTP handlers.
type Handler struct {
	users UserStore
	log   *zap.Logger
}

func NewHandler(users UserStore, log *zap.Logger) *Handler {
	return &Handler{users: users, log: log}
}

// accountRules is the rule set applied to registration and update payloads.
// Every rule runs; violations are collected, not short-circuited.
func accountRules() []validate.Rule {
	return []validate.Rule{
		{Field: "username", Check: validate.Required(), Message: "username is required"},
		{Field: "username", Check: validate.MinLength(5), Message: "username must be at least 5 characters"},
		{Field: "username", Check: validate.Alphanumeric(), Message: "username must contain only alphanumeric characters"},
		{Field: "password", Check: validate.Required(), Message: "password is required"},
		{Field: "email", Check: validate.Required(), Message: "email is required"},
		{Field: "email", Check: validate.Email(), Message: "email does not appear to be valid"},
	}
}

func fieldValues(req models.RegisterRequest) map[string]string {
	return map[string]string{
		"username": req.Username,
		"password": req.Password,
		"email":    req.Email,
	}
}

// Register creates a new account. The plaintext password is hashed before it
// reaches the store; uniqueness conflicts surface from the store's index.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	if violations := validate.Run(fieldValues(req), accountRules()); len(violations) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": violations})
		return
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		http.Error(w, `{"error":"birthday must be a YYYY-MM-DD date"}`, http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("hash password failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	user, err := h.users.Create(r.Context(), &models.User{
		Username: req.Username,
		Password: hash,
		Email:    req.Email,
		Birthday: birthday,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			http.Error(w, `{"error":"username already taken"}`, http.StatusBadRequest)
			return
		}
		h.log.Error("create user failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// List returns every account, unfiltered.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.List(r.Context())
	if err != nil {
		h.log.Error("list users failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.User{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get returns a single account by username, or a JSON null when none matches.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.log.Error("get user failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Update validates the payload like Register, re-hashes the password, and
// merges the fields into the account.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	if violations := validate.Run(fieldValues(req), accountRules()); len(violations) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": violations})
		return
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		http.Error(w, `{"error":"birthday must be a YYYY-MM-DD date"}`, http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("hash password failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	fields := bson.M{
		"username": req.Username,
		"password": hash,
		"email":    req.Email,
	}
	if !birthday.IsZero() {
		fields["birthday"] = birthday
	}

	user, err := h.users.Update(r.Context(), username, fields)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			http.Error(w, `{"error":"username already taken"}`, http.StatusBadRequest)
			return
		}
		h.log.Error("update user failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, `{"error":"user not found"}`, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// AddFavorite adds a movie to the account's favorites set and returns the
// updated account. Adding an existing member changes nothing.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.updateFavorites(w, r, h.users.AddFavorite)
}

// RemoveFavorite removes a movie from the account's favorites set and returns
// the updated account. Removing a non-member changes nothing.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.updateFavorites(w, r, h.users.RemoveFavorite)
}

func (h *Handler) updateFavorites(
	w http.ResponseWriter, r *http.Request,
	op func(context.Context, string, primitive.ObjectID) (*models.User, error),
) {
	username := chi.URLParam(r, "username")
	movieID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "movieID"))
	if err != nil {
		http.Error(w, `{"error":"invalid movie id"}`, http.StatusBadRequest)
		return
	}

	user, err := op(r.Context(), username, movieID)
	if err != nil {
		h.log.Error("update favorites failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, `{"error":"user not found"}`, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Delete removes an account and answers with a plain-text confirmation, the
// one legacy non-JSON response kept for existing clients.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	deleted, err := h.users.Delete(r.Context(), username)
	if err != nil {
		h.log.Error("delete user failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, username+" was not found", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(username + " was deleted"))
}

// parseBirthday accepts an empty value (no birthday supplied) or a date.
func parseBirthday(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(birthdayLayout, v)
}
