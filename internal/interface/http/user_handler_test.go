package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinebook/cinebook-api/internal/application"
	"github.com/cinebook/cinebook-api/internal/domain/entity"
	"github.com/cinebook/cinebook-api/pkg/helpers"
)

func newUserAPI(users *fakeUserRepo, bookings *fakeBookingRepo) *gin.Engine {
	svc := application.NewUserService(users, bookings, testLogger())
	h := NewUserHandler(svc, testLogger())

	r := gin.New()
	user := r.Group("/user")
	user.GET("", h.List)
	user.POST("", h.Register)
	user.POST("/login", h.Login)
	user.PUT("/:id", h.Update)
	user.DELETE("/:id", h.Delete)
	user.GET("/:id", h.GetByID)
	user.GET("/:id/bookings", h.Bookings)
	return r
}

func registerUser(t *testing.T, r *gin.Engine, name, email, password string) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/user", gin.H{
		"name": name, "email": email, "password": password,
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: got %d, want 201 (body %v)", w.Code, body)
	}
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatal("register: response has no id")
	}
	return id
}

func TestRegisterHashesPassword(t *testing.T) {
	users := newFakeUserRepo()
	r := newUserAPI(users, newFakeBookingRepo())

	id := registerUser(t, r, "A", "a@x.com", "secret")

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		t.Fatalf("returned id %q is not a valid ObjectID: %v", id, err)
	}
	stored := users.users[oid]
	if stored == nil {
		t.Fatal("user was not persisted")
	}
	if stored.Password == "secret" {
		t.Fatal("password stored as plaintext")
	}
	if !helpers.CompareHashAndPassword(stored.Password, "secret") {
		t.Fatal("stored hash does not match the submitted password")
	}
}

func TestRegisterValidation(t *testing.T) {
	r := newUserAPI(newFakeUserRepo(), newFakeBookingRepo())

	cases := []gin.H{
		{"email": "a@x.com", "password": "secret"},            // missing name
		{"name": "A", "password": "secret"},                   // missing email
		{"name": "A", "email": "a@x.com"},                     // missing password
		{"name": "   ", "email": "a@x.com", "password": "pw"}, // blank after trim
		{"name": "A", "email": " ", "password": "pw"},
	}
	for i, payload := range cases {
		w, body := doJSON(t, r, http.MethodPost, "/user", payload, nil)
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("case %d: got %d, want 422", i, w.Code)
		}
		if body["message"] != "Invalid inputs" {
			t.Errorf("case %d: got message %v", i, body["message"])
		}
	}
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	r := newUserAPI(users, newFakeBookingRepo())
	id := registerUser(t, r, "A", "a@x.com", "secret")

	w, body := doJSON(t, r, http.MethodPost, "/user/login", gin.H{"email": "a@x.com", "password": "secret"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d, want 200 (body %v)", w.Code, body)
	}
	if body["message"] != "Login successful" {
		t.Errorf("got message %v", body["message"])
	}
	if body["id"] != id {
		t.Errorf("login returned id %v, want %s", body["id"], id)
	}

	w, body = doJSON(t, r, http.MethodPost, "/user/login", gin.H{"email": "a@x.com", "password": "wrong"}, nil)
	if w.Code != http.StatusBadRequest || body["message"] != "Incorrect password" {
		t.Errorf("wrong password: got %d %v", w.Code, body["message"])
	}

	w, body = doJSON(t, r, http.MethodPost, "/user/login", gin.H{"email": "missing@x.com", "password": "x"}, nil)
	if w.Code != http.StatusNotFound || body["message"] != "User not found" {
		t.Errorf("unknown email: got %d %v", w.Code, body["message"])
	}

	w, _ = doJSON(t, r, http.MethodPost, "/user/login", gin.H{"email": "", "password": ""}, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("blank credentials: got %d, want 422", w.Code)
	}
}

func TestListUsers(t *testing.T) {
	users := newFakeUserRepo()
	r := newUserAPI(users, newFakeBookingRepo())

	// An empty collection is a normal 200 with an empty list.
	w, body := doJSON(t, r, http.MethodGet, "/user", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("empty list: got %d, want 200", w.Code)
	}
	if list, ok := body["users"].([]any); !ok || len(list) != 0 {
		t.Errorf("empty list: got users %v", body["users"])
	}

	registerUser(t, r, "A", "a@x.com", "secret")
	_, body = doJSON(t, r, http.MethodGet, "/user", nil, nil)
	if list, ok := body["users"].([]any); !ok || len(list) != 1 {
		t.Errorf("got users %v, want one entry", body["users"])
	}

	// Only an absent result maps to 404.
	users.allNil = true
	w, body = doJSON(t, r, http.MethodGet, "/user", nil, nil)
	if w.Code != http.StatusNotFound || body["message"] != "No users found" {
		t.Errorf("absent result: got %d %v", w.Code, body["message"])
	}
}

func TestUpdate(t *testing.T) {
	users := newFakeUserRepo()
	r := newUserAPI(users, newFakeBookingRepo())
	id := registerUser(t, r, "A", "a@x.com", "secret")
	oid, _ := primitive.ObjectIDFromHex(id)
	firstHash := users.users[oid].Password

	valid := gin.H{"name": "B", "email": "b@x.com", "password": "secret"}

	// Body validation runs before the identifier check.
	w, _ := doJSON(t, r, http.MethodPut, "/user/not-an-id", gin.H{"name": " "}, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("blank body + bad id: got %d, want 422", w.Code)
	}

	w, body := doJSON(t, r, http.MethodPut, "/user/not-an-id", valid, nil)
	if w.Code != http.StatusBadRequest || body["message"] != "Invalid user ID" {
		t.Errorf("bad id: got %d %v", w.Code, body["message"])
	}

	w, body = doJSON(t, r, http.MethodPut, "/user/"+primitive.NewObjectID().Hex(), valid, nil)
	if w.Code != http.StatusNotFound || body["message"] != "User not found" {
		t.Errorf("unknown id: got %d %v", w.Code, body["message"])
	}

	w, body = doJSON(t, r, http.MethodPut, "/user/"+id, valid, nil)
	if w.Code != http.StatusOK || body["message"] != "User updated successfully" {
		t.Fatalf("update: got %d %v", w.Code, body["message"])
	}

	// The password is rehashed unconditionally: same plaintext, new salt,
	// still comparing equal.
	updated := users.users[oid]
	if updated.Name != "B" || updated.Email != "b@x.com" {
		t.Errorf("fields not replaced: %+v", updated)
	}
	if updated.Password == firstHash {
		t.Error("password hash not regenerated on update")
	}
	if !helpers.CompareHashAndPassword(updated.Password, "secret") {
		t.Error("rehashed password no longer matches the plaintext")
	}
}

func TestDelete(t *testing.T) {
	users := newFakeUserRepo()
	r := newUserAPI(users, newFakeBookingRepo())
	id := registerUser(t, r, "A", "a@x.com", "secret")

	w, body := doJSON(t, r, http.MethodDelete, "/user/nope", nil, nil)
	if w.Code != http.StatusBadRequest || body["message"] != "Invalid user ID" {
		t.Errorf("bad id: got %d %v", w.Code, body["message"])
	}

	w, body = doJSON(t, r, http.MethodDelete, "/user/"+primitive.NewObjectID().Hex(), nil, nil)
	if w.Code != http.StatusNotFound || body["message"] != "User not found" {
		t.Errorf("unknown id: got %d %v", w.Code, body["message"])
	}

	w, body = doJSON(t, r, http.MethodDelete, "/user/"+id, nil, nil)
	if w.Code != http.StatusOK || body["message"] != "User deleted successfully" {
		t.Fatalf("delete: got %d %v", w.Code, body["message"])
	}

	w, _ = doJSON(t, r, http.MethodGet, "/user/"+id, nil, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: got %d, want 404", w.Code)
	}
}

func TestGetByID(t *testing.T) {
	users := newFakeUserRepo()
	r := newUserAPI(users, newFakeBookingRepo())
	id := registerUser(t, r, "A", "a@x.com", "secret")

	w, body := doJSON(t, r, http.MethodGet, "/user/"+id, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("no user in body: %v", body)
	}
	if user["name"] != "A" || user["email"] != "a@x.com" {
		t.Errorf("unexpected record: %v", user)
	}
	// The stored hash stays server-side.
	if _, exposed := user["password"]; exposed {
		t.Error("password field exposed in response")
	}

	w, _ = doJSON(t, r, http.MethodGet, "/user/zzz", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad id: got %d, want 400", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/user/"+primitive.NewObjectID().Hex(), nil, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: got %d, want 404", w.Code)
	}
}

func TestBookingsOfUser(t *testing.T) {
	users := newFakeUserRepo()
	bookings := newFakeBookingRepo()
	r := newUserAPI(users, bookings)
	id := registerUser(t, r, "A", "a@x.com", "secret")
	oid, _ := primitive.ObjectIDFromHex(id)

	w, body := doJSON(t, r, http.MethodGet, "/user/nope/bookings", nil, nil)
	if w.Code != http.StatusBadRequest || body["message"] != "Invalid user ID" {
		t.Errorf("bad id: got %d %v", w.Code, body["message"])
	}

	// Zero rows means not found, by contract.
	w, body = doJSON(t, r, http.MethodGet, "/user/"+id+"/bookings", nil, nil)
	if w.Code != http.StatusNotFound || body["message"] != "No bookings found" {
		t.Errorf("zero bookings: got %d %v", w.Code, body["message"])
	}

	bookings.details[oid] = []entity.BookingDetails{{
		ID:         primitive.NewObjectID(),
		Movie:      entity.Movie{ID: primitive.NewObjectID(), Title: "Interstellar"},
		User:       entity.User{ID: oid, Name: "A", Email: "a@x.com"},
		SeatNumber: 7,
	}}
	w, body = doJSON(t, r, http.MethodGet, "/user/"+id+"/bookings", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	list, ok := body["bookings"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("got bookings %v", body["bookings"])
	}
	first := list[0].(map[string]any)
	movie, _ := first["movie"].(map[string]any)
	if movie["title"] != "Interstellar" {
		t.Errorf("movie not embedded: %v", first["movie"])
	}
}

func TestUserStoreFailure(t *testing.T) {
	users := newFakeUserRepo()
	users.err = errors.New("connection reset")
	r := newUserAPI(users, newFakeBookingRepo())

	w, body := doJSON(t, r, http.MethodGet, "/user", nil, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500", w.Code)
	}
	if body["message"] != "Failed to fetch users" {
		t.Errorf("got message %v", body["message"])
	}
	if body["error"] != "connection reset" {
		t.Errorf("underlying error not surfaced: %v", body["error"])
	}
}
