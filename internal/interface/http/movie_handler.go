package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinebook/cinebook-api/internal/application"
	"github.com/cinebook/cinebook-api/internal/interface/middleware"
	"github.com/cinebook/cinebook-api/pkg/response"
	"github.com/cinebook/cinebook-api/pkg/validation"
)

type MovieHandler struct {
	Svc    *application.MovieService
	Logger *logrus.Logger
}

func NewMovieHandler(svc *application.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{Svc: svc, Logger: logger}
}

type movieRequest struct {
	Title       string   `json:"title" binding:"required,notblank"`
	Description string   `json:"description" binding:"required,notblank"`
	ReleaseDate string   `json:"release_date" binding:"required,notblank"`
	PosterURL   string   `json:"poster_url" binding:"required,notblank"`
	Featured    bool     `json:"featured"`
	Actors      []string `json:"actors"`
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// Add creates a movie. The route runs behind AdminAuth, which puts the
// token's admin ID into the context.
func (h *MovieHandler) Add(c *gin.Context) {
	var req movieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, validation.ToDetails(err))
		return
	}
	releaseDate, err := parseDate(req.ReleaseDate)
	if err != nil {
		response.Invalid(c, map[string]string{"release_date": "must be a valid date"})
		return
	}

	adminID := c.GetString(middleware.CtxAdminIDKey)
	m, err := h.Svc.Add(c.Request.Context(), adminID, application.MovieInput{
		Title:       req.Title,
		Description: req.Description,
		ReleaseDate: releaseDate,
		PosterURL:   req.PosterURL,
		Featured:    req.Featured,
		Actors:      req.Actors,
	})
	switch {
	case errors.Is(err, application.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "Invalid admin ID")
	case err != nil:
		h.Logger.WithError(err).Error("add movie failed")
		response.Internal(c, "Failed to add movie", err)
	default:
		response.JSON(c, http.StatusCreated, gin.H{"movie": m})
	}
}

func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list movies failed")
		response.Internal(c, "Failed to fetch movies", err)
		return
	}
	if movies == nil {
		response.Message(c, http.StatusNotFound, "No movies found")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"movies": movies})
}

func (h *MovieHandler) GetByID(c *gin.Context) {
	m, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, application.ErrInvalidID):
		response.Message(c, http.StatusBadRequest, "Invalid movie ID")
	case errors.Is(err, application.ErrMovieNotFound):
		response.Message(c, http.StatusNotFound, "Movie not found")
	case err != nil:
		h.Logger.WithError(err).Error("get movie failed")
		response.Internal(c, "Failed to get movie", err)
	default:
		response.JSON(c, http.StatusOK, gin.H{"movie": m})
	}
}
