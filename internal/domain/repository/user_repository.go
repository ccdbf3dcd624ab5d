package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinebook/cinebook-api/internal/domain/entity"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("not found")

// UserRepository defines the user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
