package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking links a user to a movie for a show date and seat.
// Many bookings per user, many bookings per movie.
type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Movie      primitive.ObjectID `bson:"movie" json:"movie"`
	User       primitive.ObjectID `bson:"user" json:"user"`
	Date       time.Time          `bson:"date" json:"date"`
	SeatNumber int                `bson:"seat_number" json:"seat_number"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// BookingDetails is a Booking with its movie and user references
// resolved to full embedded documents ($lookup result).
type BookingDetails struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Movie      Movie              `bson:"movie" json:"movie"`
	User       User               `bson:"user" json:"user"`
	Date       time.Time          `bson:"date" json:"date"`
	SeatNumber int                `bson:"seat_number" json:"seat_number"`
}
