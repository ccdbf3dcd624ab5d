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

type BookingHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewBookingHandler(svc *application.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

type bookingRequest struct {
	Movie      string `json:"movie" binding:"required,notblank"`
	User       string `json:"user" binding:"required,notblank"`
	Date       string `json:"date" binding:"required,notblank"`
	SeatNumber int    `json:"seat_number" binding:"required,gt=0"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Invalid(c, map[string]string{"date": "must be a valid date"})
		return
	}

	b, err := h.Svc.Create(c.Request.Context(), application.BookingInput{
		Movie:      req.Movie,
		User:       req.User,
		Date:       date,
		SeatNumber: req.SeatNumber,
	})
	switch {
	case errors.Is(err, application.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "Invalid ID")
	case errors.Is(err, application.ErrMovieNotFound):
		response.Message(c, http.StatusNotFound, "Movie not found")
	case errors.Is(err, application.ErrUserNotFound):
		response.Message(c, http.StatusNotFound, "User not found")
	case err != nil:
		h.Logger.WithError(err).Error("create booking failed")
		response.Internal(c, "Failed to create booking", err)
	default:
		response.JSON(c, http.StatusCreated, gin.H{"booking": b})
	}
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	b, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, application.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "Invalid booking ID")
	case errors.Is(err, application.ErrBookingNotFound):
		response.Message(c, http.StatusNotFound, "Booking not found")
	case err != nil:
		h.Logger.WithError(err).Error("get booking failed")
		response.Internal(c, "Failed to get booking", err)
	default:
		response.JSON(c, http.StatusOK, gin.H{"booking": b})
	}
}

func (h *BookingHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, application.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "Invalid booking ID")
	case errors.Is(err, application.ErrBookingNotFound):
		response.Message(c, http.StatusNotFound, "Booking not found")
	case err != nil:
		h.Logger.WithError(err).Error("delete booking failed")
		response.Internal(c, "Failed to delete booking", err)
	default:
		response.Message(c, http.StatusOK, "Booking deleted successfully")
	}
}
