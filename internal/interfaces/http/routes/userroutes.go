package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reelhub/reelhub/internal/interfaces/http/handlers"
)

// SetupUserRoutes configures user routes under /admin.
func SetupUserRoutes(admin *gin.RouterGroup, handler *handlers.UserHandler) {
	users := admin.Group("/users")
	{
		users.POST("", handler.Create)
		users.GET("", handler.List)
		users.GET("/:id", handler.Get)
		users.PATCH("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
		users.POST("/:id/activate", handler.Activate)
		users.POST("/:id/deactivate", handler.Deactivate)
	}
}
