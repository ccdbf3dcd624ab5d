package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinebook/cinebook-api/internal/domain/entity"
	"github.com/cinebook/cinebook-api/internal/domain/repository"
)

const adminsCollection = "admins"

type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(adminsCollection)}
}

func (r *AdminRepository) Create(ctx context.Context, a *entity.Admin) (primitive.ObjectID, error) {
	a.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := res.InsertedID.(primitive.ObjectID)
	a.ID = id
	return id, nil
}

func (r *AdminRepository) GetAll(ctx context.Context) ([]entity.Admin, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	admins := make([]entity.Admin, 0)
	if err := cur.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Admin, error) {
	a := &entity.Admin{}
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	a := &entity.Admin{}
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

var _ repository.AdminRepository = (*AdminRepository)(nil)
