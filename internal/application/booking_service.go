package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinebook/cinebook-api/internal/domain/entity"
	"github.com/cinebook/cinebook-api/internal/domain/repository"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingInput struct {
	Movie      string
	User       string
	Date       time.Time
	SeatNumber int
}

type BookingService struct {
	Bookings repository.BookingRepository
	Movies   repository.MovieRepository
	Users    repository.UserRepository
	Logger   *logrus.Logger
}

func NewBookingService(bookings repository.BookingRepository, movies repository.MovieRepository, users repository.UserRepository, logger *logrus.Logger) *BookingService {
	return &BookingService{Bookings: bookings, Movies: movies, Users: users, Logger: logger}
}

// Create verifies the referenced movie and user exist before inserting.
// The checks are sequential reads; no multi-document transaction is used.
func (s *BookingService) Create(ctx context.Context, in BookingInput) (*entity.Booking, error) {
	movieID, err := primitive.ObjectIDFromHex(in.Movie)
	if err != nil {
		return nil, ErrInvalidID
	}
	userID, err := primitive.ObjectIDFromHex(in.User)
	if err != nil {
		return nil, ErrInvalidID
	}

	if _, err := s.Movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	b := &entity.Booking{Movie: movieID, User: userID, Date: in.Date, SeatNumber: in.SeatNumber}
	if _, err := s.Bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{
		"booking_id": b.ID.Hex(),
		"movie_id":   in.Movie,
		"user_id":    in.User,
	}).Info("booking created")
	return b, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	b, err := s.Bookings.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if err := s.Bookings.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return nil
}
