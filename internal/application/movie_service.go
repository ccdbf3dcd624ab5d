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

var ErrMovieNotFound = errors.New("movie not found")

type MovieInput struct {
	Title       string
	Description string
	ReleaseDate time.Time
	PosterURL   string
	Featured    bool
	Actors      []string
}

type MovieService struct {
	Movies repository.MovieRepository
	Logger *logrus.Logger
}

func NewMovieService(movies repository.MovieRepository, logger *logrus.Logger) *MovieService {
	return &MovieService{Movies: movies, Logger: logger}
}

// Add publishes a movie on behalf of the authenticated admin.
func (s *MovieService) Add(ctx context.Context, adminID string, in MovieInput) (*entity.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return nil, ErrInvalidID
	}
	m := &entity.Movie{
		Title:       in.Title,
		Description: in.Description,
		ReleaseDate: in.ReleaseDate,
		PosterURL:   in.PosterURL,
		Featured:    in.Featured,
		Actors:      in.Actors,
		Admin:       oid,
	}
	if _, err := s.Movies.Create(ctx, m); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"movie_id": m.ID.Hex(), "admin_id": adminID}).Info("movie added")
	return m, nil
}

func (s *MovieService) List(ctx context.Context) ([]entity.Movie, error) {
	return s.Movies.GetAll(ctx)
}

func (s *MovieService) GetByID(ctx context.Context, id string) (*entity.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	m, err := s.Movies.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}
