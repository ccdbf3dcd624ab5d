package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinebook/cinebook-api/internal/domain/entity"
	"github.com/cinebook/cinebook-api/internal/domain/repository"
	"github.com/cinebook/cinebook-api/pkg/helpers"
)

var (
	ErrInvalidID         = errors.New("invalid id")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// UserInput carries the three fields every create/update requires.
// Updates are full replacements: the password is rehashed every time,
// even when the caller submits the same value.
type UserInput struct {
	Name     string
	Email    string
	Password string
}

type UserService struct {
	Users    repository.UserRepository
	Bookings repository.BookingRepository
	Logger   *logrus.Logger
}

func NewUserService(users repository.UserRepository, bookings repository.BookingRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Bookings: bookings, Logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Users.GetAll(ctx)
}

func (s *UserService) Register(ctx context.Context, in UserInput) (primitive.ObjectID, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return primitive.NilObjectID, err
	}
	u := &entity.User{Name: in.Name, Email: in.Email, Password: hash}
	id, err := s.Users.Create(ctx, u)
	if err != nil {
		return primitive.NilObjectID, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": id.Hex()}).Info("user registered")
	return id, nil
}

func (s *UserService) Update(ctx context.Context, id string, in UserInput) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return err
	}
	u := &entity.User{ID: oid, Name: in.Name, Email: in.Email, Password: hash}
	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if err := s.Users.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": id}).Info("user deleted")
	return nil
}

// Login compares the submitted password against the stored bcrypt hash
// and returns the bare identifier credential on success.
func (s *UserService) Login(ctx context.Context, email, password string) (LegacyIdentityToken, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return LegacyIdentityToken{}, ErrUserNotFound
		}
		return LegacyIdentityToken{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return LegacyIdentityToken{}, ErrIncorrectPassword
	}
	return LegacyIdentityToken{UserID: u.ID}, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	u, err := s.Users.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// BookingsOf returns the user's bookings with movie and user documents
// embedded. Zero rows is reported by the handler as not found.
func (s *UserService) BookingsOf(ctx context.Context, id string) ([]entity.BookingDetails, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.Bookings.GetByUserWithDetails(ctx, oid)
}
