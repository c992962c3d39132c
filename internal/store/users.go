package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/myflix/myflix-api/internal/models"
)

// ErrDuplicateUsername reports a username uniqueness conflict.
var ErrDuplicateUsername = errors.New("username already taken")

// UserStore handles user account CRUD in MongoDB.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("users")}
}

// EnsureIndexes creates the unique username index. Uniqueness is enforced at
// the store so that two concurrent registrations cannot both succeed.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo create index: %w", err)
	}
	return nil
}

func (s *UserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.CreatedAt = time.Now()
	if user.Favorites == nil {
		user.Favorites = []primitive.ObjectID{}
	}
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("mongo insert user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo find users: %w", err)
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("mongo decode users: %w", err)
	}
	return users, nil
}

// GetByUsername returns the user, or nil when no document matches.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find user: %w", err)
	}
	return &u, nil
}

// Update merges fields into the user document and returns the updated
// document, or nil when the user does not exist.
func (s *UserStore) Update(ctx context.Context, username string, fields bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := s.col.FindOneAndUpdate(ctx, bson.M{"username": username}, bson.M{"$set": fields}, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("mongo update user: %w", err)
	}
	return &u, nil
}

// AddFavorite adds a movie to the user's favorites set. Adding an existing
// member is a no-op.
func (s *UserStore) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return s.updateFavorites(ctx, username, bson.M{"$addToSet": bson.M{"favorites": movieID}})
}

// RemoveFavorite removes a movie from the user's favorites set. Removing a
// non-member is a no-op.
func (s *UserStore) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return s.updateFavorites(ctx, username, bson.M{"$pull": bson.M{"favorites": movieID}})
}

func (s *UserStore) updateFavorites(ctx context.Context, username string, update bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := s.col.FindOneAndUpdate(ctx, bson.M{"username": username}, update, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo update favorites: %w", err)
	}
	return &u, nil
}

// Delete removes the user document. The boolean reports whether a document
// was actually removed; deleting a missing user is not a store error.
func (s *UserStore) Delete(ctx context.Context, username string) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return false, fmt.Errorf("mongo delete user: %w", err)
	}
	return res.DeletedCount > 0, nil
}
