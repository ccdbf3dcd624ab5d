package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/cinebook/cinebook-api/internal/interface/http"
)

// BookingModule wires the booking routes:
// POST /booking, GET /booking/:id, DELETE /booking/:id
type BookingModule struct {
	Handler *handlers.BookingHandler
}

func NewBookingModule(h *handlers.BookingHandler) *BookingModule {
	return &BookingModule{Handler: h}
}

func (m *BookingModule) Register(rg *gin.RouterGroup) {
	booking := rg.Group("/booking")
	{
		booking.POST("", m.Handler.Create)
		booking.GET("/:id", m.Handler.GetByID)
		booking.DELETE("/:id", m.Handler.Delete)
	}
}
