package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinebook/cinebook-api/internal/domain/entity"
)

// BookingRepository defines the booking-related database operations.
// GetByUserWithDetails resolves the movie and user references of each
// booking into full embedded documents.
type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error)
	GetByUserWithDetails(ctx context.Context, userID primitive.ObjectID) ([]entity.BookingDetails, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
