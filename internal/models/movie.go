package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Genre describes a movie's genre.
type Genre struct {
	Name        string `json:"name"        bson:"name"`
	Description string `json:"description" bson:"description"`
}

// Director describes a movie's director.
type Director struct {
	Name      string `json:"name"       bson:"name"`
	Bio       string `json:"bio"        bson:"bio"`
	BirthYear int    `json:"birth_year" bson:"birth_year"`
}

// Movie is a catalog document in the movies collection. The catalog is
// read-only through the API; documents are loaded by the seed command.
type Movie struct {
	ID          primitive.ObjectID `json:"id"          bson:"_id,omitempty"`
	Title       string             `json:"title"       bson:"title"`
	Description string             `json:"description" bson:"description"`
	Genre       Genre              `json:"genre"       bson:"genre"`
	Director    Director           `json:"director"    bson:"director"`
}
