package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	TokenTTL       time.Duration
	AuthDisabled   bool
	AllowedOrigins []string
}

func Load() *Config {
	ttl, err := time.ParseDuration(getenv("TOKEN_TTL", "168h"))
	if err != nil {
		ttl = 168 * time.Hour
	}
	return &Config{
		Port:         getenv("PORT", "8080"),
		MongoURI:     getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getenv("MONGO_DB", "myflix"),
		JWTSecret:    getenv("JWT_SECRET", ""),
		TokenTTL:     ttl,
		AuthDisabled: getenv("AUTH_DISABLED", "false") == "true",
		AllowedOrigins: strings.Split(
			getenv("ALLOWED_ORIGINS", "http://localhost:1234,http://localhost:4200"), ","),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
