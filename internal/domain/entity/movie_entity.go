package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is a title available for booking. Admin references the
// account that published it.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ReleaseDate time.Time          `bson:"release_date" json:"release_date"`
	PosterURL   string             `bson:"poster_url" json:"poster_url"`
	Featured    bool               `bson:"featured" json:"featured"`
	Actors      []string           `bson:"actors" json:"actors"`
	Admin       primitive.ObjectID `bson:"admin,omitempty" json:"admin"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
