package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cinebook/cinebook-api/internal/container"
	handlers "github.com/cinebook/cinebook-api/internal/interface/http"
	"github.com/cinebook/cinebook-api/internal/interface/middleware"
)

// AdminModule wires the admin routes:
// POST /admin/signup, POST /admin/login, GET /admin, GET /admin/:id
type AdminModule struct {
	Handler *handlers.AdminHandler
}

func NewAdminModule(h *handlers.AdminHandler) *AdminModule {
	return &AdminModule{Handler: h}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	admin := rg.Group("/admin")
	{
		admin.GET("", m.Handler.List)
		admin.POST("/signup", m.Handler.Register)
		admin.POST("/login", loginLimiter, m.Handler.Login)
		admin.GET("/:id", m.Handler.GetByID)
	}
}
