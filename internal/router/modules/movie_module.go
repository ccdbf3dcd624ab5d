package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/cinebook/cinebook-api/internal/interface/http"
	"github.com/cinebook/cinebook-api/internal/interface/middleware"
	"github.com/cinebook/cinebook-api/pkg/helpers"
)

// MovieModule wires the movie routes. Creation requires an admin
// bearer token; reads are public.
type MovieModule struct {
	Handler *handlers.MovieHandler
	JWT     *helpers.JWTManager
}

func NewMovieModule(h *handlers.MovieHandler, jwt *helpers.JWTManager) *MovieModule {
	return &MovieModule{Handler: h, JWT: jwt}
}

func (m *MovieModule) Register(rg *gin.RouterGroup) {
	movie := rg.Group("/movie")
	{
		movie.GET("", m.Handler.List)
		movie.GET("/:id", m.Handler.GetByID)
		movie.POST("", middleware.AdminAuth(m.JWT), m.Handler.Add)
	}
}
