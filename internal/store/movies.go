package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/myflix/myflix-api/internal/models"
)

// MovieStore handles catalog reads in MongoDB. The catalog is read-only
// through the API; Insert and Count exist for the seed command.
type MovieStore struct {
	col *mongo.Collection
}

func NewMovieStore(db *mongo.Database) *MovieStore {
	return &MovieStore{col: db.Collection("movies")}
}

func (s *MovieStore) List(ctx context.Context) ([]models.Movie, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo find movies: %w", err)
	}
	defer cur.Close(ctx)

	var movies []models.Movie
	if err := cur.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("mongo decode movies: %w", err)
	}
	return movies, nil
}

// GetByTitle returns the first movie with the given title, or nil when no
// document matches.
func (s *MovieStore) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	var m models.Movie
	err := s.col.FindOne(ctx, bson.M{"title": title}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find movie: %w", err)
	}
	return &m, nil
}

// GetByGenre returns the genre sub-object of the first movie in that genre,
// or nil when no movie matches.
func (s *MovieStore) GetByGenre(ctx context.Context, name string) (*models.Genre, error) {
	var m models.Movie
	err := s.col.FindOne(ctx, bson.M{"genre.name": name}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find genre: %w", err)
	}
	return &m.Genre, nil
}

// GetByDirector returns the director sub-object of the first movie by that
// director, or nil when no movie matches.
func (s *MovieStore) GetByDirector(ctx context.Context, name string) (*models.Director, error) {
	var m models.Movie
	err := s.col.FindOne(ctx, bson.M{"director.name": name}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find director: %w", err)
	}
	return &m.Director, nil
}

func (s *MovieStore) Insert(ctx context.Context, movie *models.Movie) error {
	if _, err := s.col.InsertOne(ctx, movie); err != nil {
		return fmt.Errorf("mongo insert movie: %w", err)
	}
	return nil
}

func (s *MovieStore) Count(ctx context.Context) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongo count movies: %w", err)
	}
	return n, nil
}
