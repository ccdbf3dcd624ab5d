package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinebook/cinebook-api/internal/domain/entity"
)

// MovieRepository defines the movie-related database operations.
type MovieRepository interface {
	Create(ctx context.Context, m *entity.Movie) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]entity.Movie, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error)
}
