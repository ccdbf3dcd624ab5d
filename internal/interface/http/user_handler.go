package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinebook/cinebook-api/internal/application"
	"github.com/cinebook/cinebook-api/pkg/response"
	"github.com/cinebook/cinebook-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type userRequest struct {
	Name     string `json:"name" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

type userLoginRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

// List returns every user. An absent result maps to 404; an empty
// slice is a normal 200.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Internal(c, "Failed to fetch users", err)
		return
	}
	if users == nil {
		response.Message(c, http.StatusNotFound, "No users found")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) Register(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Register(c.Request.Context(), application.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.Logger.WithError(err).Error("register user failed")
		response.Internal(c, "Failed to create user", err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"id": id.Hex()})
}

// Update replaces name, email and password. Body validation runs before
// the identifier check, matching the documented contract order.
func (h *UserHandler) Update(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case errors.Is(err, application.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "Invalid user ID")
	case errors.Is(err, application.ErrUserNotFound):
		response.Message(c, http.StatusNotFound, "User not found")
	case err != nil:
		h.Logger.WithError(err).Error("update user failed")
		response.Internal(c, "Failed to update user", err)
	default:
		response.Message(c, http.StatusOK, "User updated successfully")
	}
}

func (h *UserHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, application.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "Invalid user ID")
	case errors.Is(err, application.ErrUserNotFound):
		response.Message(c, http.StatusNotFound, "User not found")
	case err != nil:
		h.Logger.WithError(err).Error("delete user failed")
		response.Internal(c, "Failed to delete user", err)
	default:
		response.Message(c, http.StatusOK, "User deleted successfully")
	}
}

// Login answers with the bare user identifier on success. No session or
// token is issued for users.
func (h *UserHandler) Login(c *gin.Context) {
	var req userLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	tok, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Message(c, http.StatusNotFound, "User not found")
	case errors.Is(err, application.ErrIncorrectPassword):
		response.Message(c, http.StatusBadRequest, "Incorrect password")
	case err != nil:
		h.Logger.WithError(err).Error("login failed")
		response.Internal(c, "Login failed", err)
	default:
		response.JSON(c, http.StatusOK, gin.H{"message": "Login successful", "id": tok.String()})
	}
}

// Bookings returns the user's bookings joined with movie and user
// documents. Zero rows maps to 404.
func (h *UserHandler) Bookings(c *gin.Context) {
	bookings, err := h.Svc.BookingsOf(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, application.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "Invalid user ID")
	case err != nil:
		h.Logger.WithError(err).Error("get bookings failed")
		response.Internal(c, "Failed to get bookings", err)
	case len(bookings) == 0:
		response.Message(c, http.StatusNotFound, "No bookings found")
	default:
		response.JSON(c, http.StatusOK, gin.H{"bookings": bookings})
	}
}

func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, application.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "Invalid user ID")
	case errors.Is(err, application.ErrUserNotFound):
		response.Message(c, http.StatusNotFound, "User not found")
	case err != nil:
		h.Logger.WithError(err).Error("get user failed")
		response.Internal(c, "Failed to get user", err)
	default:
		response.JSON(c, http.StatusOK, gin.H{"user": u})
	}
}
