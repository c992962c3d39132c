package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account document in the users collection. Favorites is a
// de-duplicated set of movie IDs embedded in the document.
type User struct {
	ID        primitive.ObjectID   `json:"id"         bson:"_id,omitempty"`
	Username  string               `json:"username"   bson:"username"`
	Password  string               `json:"-"          bson:"password"` // bcrypt hash, never serialized
	Email     string               `json:"email"      bson:"email"`
	Birthday  time.Time            `json:"birthday"   bson:"birthday"`
	Favorites []primitive.ObjectID `json:"favorites"  bson:"favorites"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
}

// RegisterRequest is the JSON body for POST /users and PUT /users/{username}.
// Birthday is an optional YYYY-MM-DD date.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Birthday string `json:"birthday"`
}

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
