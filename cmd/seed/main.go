// Command seed loads the starter catalog into an empty movies collection.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/myflix/myflix-api/internal/config"
	"github.com/myflix/myflix-api/internal/store"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	movieStore := store.NewMovieStore(client.Database(cfg.MongoDB))

	n, err := movieStore.Count(ctx)
	if err != nil {
		logger.Fatal("count movies", zap.Error(err))
	}
	if n > 0 {
		logger.Info("movies collection already seeded", zap.Int64("count", n))
		return
	}

	catalog := store.SeedMovies()
	for i := range catalog {
		if err := movieStore.Insert(ctx, &catalog[i]); err != nil {
			logger.Fatal("insert movie", zap.Error(err), zap.String("title", catalog[i].Title))
		}
	}
	logger.Info("seeded movie catalog", zap.Int("count", len(catalog)))
}
