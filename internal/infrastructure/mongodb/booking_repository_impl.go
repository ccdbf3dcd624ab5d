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

const bookingsCollection = "bookings"

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, b *entity.Booking) (primitive.ObjectID, error) {
	b.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := res.InsertedID.(primitive.ObjectID)
	b.ID = id
	return id, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	b := &entity.Booking{}
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetByUserWithDetails joins each booking of the user with its movie and
// user documents in a single aggregation.
func (r *BookingRepository) GetByUserWithDetails(ctx context.Context, userID primitive.ObjectID) ([]entity.BookingDetails, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user", Value: userID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: moviesCollection},
			{Key: "localField", Value: "movie"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "movie"},
		}}},
		{{Key: "$unwind", Value: "$movie"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: "$user"}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	bookings := make([]entity.BookingDetails, 0)
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.BookingRepository = (*BookingRepository)(nil)
