package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/myflix/myflix-api/internal/api"
	"github.com/myflix/myflix-api/internal/auth"
	"github.com/myflix/myflix-api/internal/config"
	"github.com/myflix/myflix-api/internal/movies"
	"github.com/myflix/myflix-api/internal/store"
	"github.com/myflix/myflix-api/internal/users"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" && !cfg.AuthDisabled {
		logger.Fatal("JWT_SECRET must be set unless AUTH_DISABLED=true")
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)
	db := mongoClient.Database(cfg.MongoDB)

	userStore := store.NewUserStore(db)
	if err := userStore.EnsureIndexes(ctx); err != nil {
		logger.Fatal("mongo indexes", zap.Error(err))
	}
	movieStore := store.NewMovieStore(db)

	// ── Handlers ─────────────────────────────────────────────
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	authHandler := auth.NewHandler(userStore, tokens, logger)
	userHandler := users.NewHandler(userStore, logger)
	movieHandler := movies.NewHandler(movieStore, logger)

	if cfg.AuthDisabled {
		logger.Warn("running with authentication disabled")
	}

	// ── Router ───────────────────────────────────────────────
	r := api.NewRouter(cfg, logger, tokens, authHandler, userHandler, movieHandler)

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
