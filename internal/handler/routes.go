package handler

import (
	"hotel-rooms-backend/internal/config"
	"hotel-rooms-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router serves. Guests is nil when the
// guest database is not configured.
type Handlers struct {
	Rooms    *RoomHandler
	Statuses *StatusHandler
	Guests   *GuestHandler
	Health   *HealthHandler
}

// NewRouter builds the gin engine with CORS and every route group
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(cfg))

	if h.Health != nil {
		r.GET("/health", h.Health.Health)
	}
	RegisterRoomRoutes(r, h.Rooms)
	RegisterStatusRoutes(r, h.Statuses)
	if h.Guests != nil {
		RegisterGuestRoutes(r, h.Guests)
	}
	return r
}

// RegisterRoomRoutes mounts the room endpoints. They are unauthenticated.
func RegisterRoomRoutes(r gin.IRouter, h *RoomHandler) {
	r.GET("/quartos", h.ListRooms)
	r.GET("/quartos/:numero", h.GetRoom)
	r.POST("/inserirQuarto", h.CreateRoom)
	r.PUT("/atualizarQuarto", h.UpdateRoom)
	r.DELETE("/excluirQuarto/:numero", h.DeleteRoom)
}

// RegisterStatusRoutes mounts the administrative status endpoints
func RegisterStatusRoutes(r gin.IRouter, h *StatusHandler) {
	r.GET("/disponibilidade", h.GetAvailability)
	r.POST("/atualizar-status", h.UpdateStatus)
	r.POST("/adicionar-status", h.AddStatus)
	r.DELETE("/excluir-status/:numero", h.DeleteStatus)
}

// RegisterGuestRoutes mounts the guest endpoints; all but register and
// login need a guest token.
func RegisterGuestRoutes(r gin.IRouter, h *GuestHandler) {
	guests := r.Group("/hospedes")
	{
		guests.POST("", h.Register)
		guests.POST("/login", h.Login)

		authed := guests.Group("")
		authed.Use(middleware.GuestAuth())
		{
			authed.GET("", h.List)
			authed.GET("/me", h.Me)
			authed.GET("/cpf/:cpf", h.GetByCPF)
			authed.PUT("/me", h.UpdateMe)
			authed.DELETE("/me", h.DeleteMe)
		}
	}
}
