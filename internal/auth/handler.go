package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/myflix/myflix-api/internal/models"
)

// UserStore defines the user lookup login needs.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users  UserStore
	tokens *Tokens
	log    *zap.Logger
}

func NewHandler(users UserStore, tokens *Tokens, log *zap.Logger) *Handler {
	return &Handler{users: users, tokens: tokens, log: log}
}

// Login checks credentials and issues a bearer token. Unknown usernames and
// wrong passwords produce the same response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		h.log.Error("login lookup failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	if user == nil || !CheckPassword(user.Password, req.Password) {
		http.Error(w, `{"error":"`+ErrInvalidCredentials.Error()+`"}`, http.StatusUnauthorized)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.log.Error("token issue failed", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
