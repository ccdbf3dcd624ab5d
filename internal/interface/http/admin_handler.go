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

type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

type adminRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

func (h *AdminHandler) Register(c *gin.Context) {
	var req adminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, application.ErrAdminExists):
		response.Message(c, http.StatusBadRequest, "Admin already exists")
	case err != nil:
		h.Logger.WithError(err).Error("register admin failed")
		response.Internal(c, "Failed to create admin", err)
	default:
		response.JSON(c, http.StatusCreated, gin.H{"id": id.Hex()})
	}
}

// Login issues a bearer token for the protected movie routes.
func (h *AdminHandler) Login(c *gin.Context) {
	var req adminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	sess, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, application.ErrAdminNotFound):
		response.Message(c, http.StatusNotFound, "Admin not found")
	case errors.Is(err, application.ErrIncorrectPassword):
		response.Message(c, http.StatusBadRequest, "Incorrect password")
	case err != nil:
		h.Logger.WithError(err).Error("admin login failed")
		response.Internal(c, "Login failed", err)
	default:
		response.JSON(c, http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   sess.Token,
			"id":      sess.AdminID.Hex(),
		})
	}
}

func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list admins failed")
		response.Internal(c, "Failed to fetch admins", err)
		return
	}
	if admins == nil {
		response.Message(c, http.StatusNotFound, "No admins found")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"admins": admins})
}

func (h *AdminHandler) GetByID(c *gin.Context) {
	a, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, application.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "Invalid admin ID")
	case errors.Is(err, application.ErrAdminNotFound):
		response.Message(c, http.StatusNotFound, "Admin not found")
	case err != nil:
		h.Logger.WithError(err).Error("get admin failed")
		response.Internal(c, "Failed to get admin", err)
	default:
		response.JSON(c, http.StatusOK, gin.H{"admin": a})
	}
}
