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

const moviesCollection = "movies"

type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(moviesCollection)}
}

func (r *MovieRepository) Create(ctx context.Context, m *entity.Movie) (primitive.ObjectID, error) {
	m.CreatedAt = time.Now().UTC()
	if m.Actors == nil {
		m.Actors = []string{}
	}

	res, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := res.InsertedID.(primitive.ObjectID)
	m.ID = id
	return id, nil
}

func (r *MovieRepository) GetAll(ctx context.Context) ([]entity.Movie, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	movies := make([]entity.Movie, 0)
	if err := cur.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	m := &entity.Movie{}
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

var _ repository.MovieRepository = (*MovieRepository)(nil)
