package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cinebook/cinebook-api/internal/container"
	handlers "github.com/cinebook/cinebook-api/internal/interface/http"
	"github.com/cinebook/cinebook-api/internal/interface/middleware"
)

// UserModule wires the user routes:
// GET /user, POST /user, PUT /user/:id, DELETE /user/:id,
// POST /user/login, GET /user/:id/bookings, GET /user/:id
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	user := rg.Group("/user")
	{
		user.GET("", m.Handler.List)
		user.POST("", m.Handler.Register)
		user.POST("/login", loginLimiter, m.Handler.Login)
		user.PUT("/:id", m.Handler.Update)
		user.DELETE("/:id", m.Handler.Delete)
		user.GET("/:id", m.Handler.GetByID)
		user.GET("/:id/bookings", m.Handler.Bookings)
	}
}
