package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinebook/cinebook-api/internal/domain/entity"
)

// AdminRepository defines the admin-related database operations.
type AdminRepository interface {
	Create(ctx context.Context, a *entity.Admin) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]entity.Admin, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
