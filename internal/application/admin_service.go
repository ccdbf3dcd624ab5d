package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinebook/cinebook-api/internal/domain/entity"
	"github.com/cinebook/cinebook-api/internal/domain/repository"
	"github.com/cinebook/cinebook-api/pkg/helpers"
)

var (
	ErrAdminNotFound = errors.New("admin not found")
	ErrAdminExists   = errors.New("admin already exists")
)

// AdminSession is the result of an admin login: unlike user login,
// admins get a signed bearer token for the protected movie routes.
type AdminSession struct {
	AdminID   primitive.ObjectID
	Token     string
	ExpiresAt time.Time
}

type AdminService struct {
	Admins repository.AdminRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAdminService(admins repository.AdminRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AdminService {
	return &AdminService{Admins: admins, JWT: jwt, Logger: logger}
}

func (s *AdminService) Register(ctx context.Context, email, password string) (primitive.ObjectID, error) {
	_, err := s.Admins.GetByEmail(ctx, email)
	if err == nil {
		return primitive.NilObjectID, ErrAdminExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return primitive.NilObjectID, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return primitive.NilObjectID, err
	}
	a := &entity.Admin{Email: email, Password: hash}
	id, err := s.Admins.Create(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	s.Logger.WithFields(logrus.Fields{"admin_id": id.Hex()}).Info("admin registered")
	return id, nil
}

func (s *AdminService) Login(ctx context.Context, email, password string) (*AdminSession, error) {
	a, err := s.Admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(a.Password, password) {
		return nil, ErrIncorrectPassword
	}

	token, exp, err := s.JWT.GenerateToken(a.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &AdminSession{AdminID: a.ID, Token: token, ExpiresAt: exp}, nil
}

func (s *AdminService) List(ctx context.Context) ([]entity.Admin, error) {
	return s.Admins.GetAll(ctx)
}

func (s *AdminService) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	a, err := s.Admins.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return a, nil
}
