package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/myflix/myflix-api/internal/models"
)

// Auth failure modes surfaced to the transport layer.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingToken       = errors.New("missing bearer token")
	ErrMalformedToken     = errors.New("malformed bearer token")
	ErrExpiredToken       = errors.New("token expired")
)

// Identity is the verified caller attached to protected requests.
type Identity struct {
	UserID   string
	Username string
}

// Tokens issues and verifies signed bearer tokens. Verification is stateless:
// nothing is stored server-side and expiry is the only invalidation.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding the user's identity to an expiration.
func (t *Tokens) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID.Hex(),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(t.ttl).Unix(),
		"jti":      uuid.New().String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and checks a raw token, resolving it back to an identity.
func (t *Tokens) Verify(raw string) (*Identity, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}
	parsed, err := jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrMalformedToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformedToken
	}
	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	if sub == "" || username == "" {
		return nil, ErrMalformedToken
	}
	return &Identity{UserID: sub, Username: username}, nil
}
