package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinebook/cinebook-api/internal/domain/entity"
	"github.com/cinebook/cinebook-api/internal/domain/repository"
	"github.com/cinebook/cinebook-api/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

// fakeUserRepo is an in-memory repository.UserRepository with error
// injection for the 500 paths.
type fakeUserRepo struct {
	users  map[primitive.ObjectID]*entity.User
	err    error
	allNil bool // make GetAll return an absent (nil) result
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	u.ID = primitive.NewObjectID()
	cp := *u
	f.users[u.ID] = &cp
	return u.ID, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.allNil {
		return nil, nil
	}
	out := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeAdminRepo struct {
	admins map[primitive.ObjectID]*entity.Admin
	err    error
	allNil bool // make GetAll return an absent (nil) result
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[primitive.ObjectID]*entity.Admin)}
}

func (f *fakeAdminRepo) Create(_ context.Context, a *entity.Admin) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	a.ID = primitive.NewObjectID()
	cp := *a
	f.admins[a.ID] = &cp
	return a.ID, nil
}

func (f *fakeAdminRepo) GetAll(_ context.Context) ([]entity.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.allNil {
		return nil, nil
	}
	out := make([]entity.Admin, 0, len(f.admins))
	for _, a := range f.admins {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.admins[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*entity.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeMovieRepo struct {
	movies map[primitive.ObjectID]*entity.Movie
	err    error
	allNil bool // make GetAll return an absent (nil) result
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[primitive.ObjectID]*entity.Movie)}
}

func (f *fakeMovieRepo) Create(_ context.Context, m *entity.Movie) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	m.ID = primitive.NewObjectID()
	cp := *m
	f.movies[m.ID] = &cp
	return m.ID, nil
}

func (f *fakeMovieRepo) GetAll(_ context.Context) ([]entity.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.allNil {
		return nil, nil
	}
	out := make([]entity.Movie, 0, len(f.movies))
	for _, m := range f.movies {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMovieRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.movies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

type fakeBookingRepo struct {
	bookings map[primitive.ObjectID]*entity.Booking
	details  map[primitive.ObjectID][]entity.BookingDetails // keyed by user ID
	err      error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[primitive.ObjectID]*entity.Booking),
		details:  make(map[primitive.ObjectID][]entity.BookingDetails),
	}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	b.ID = primitive.NewObjectID()
	cp := *b
	f.bookings[b.ID] = &cp
	return b.ID, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) GetByUserWithDetails(_ context.Context, userID primitive.ObjectID) ([]entity.BookingDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.details[userID], nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.bookings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}
