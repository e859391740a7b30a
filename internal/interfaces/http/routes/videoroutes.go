package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reelhub/reelhub/internal/interfaces/http/handlers"
)

// SetupVideoRoutes configures video routes under /admin.
func SetupVideoRoutes(admin *gin.RouterGroup, handler *handlers.VideoHandler) {
	videos := admin.Group("/videos")
	{
		videos.POST("", handler.Create)
		videos.GET("", handler.List)
		videos.GET("/:id", handler.Get)
		videos.PATCH("/:id", handler.Update)
		videos.DELETE("/:id", handler.Delete)
		videos.POST("/:id/activate", handler.Activate)
		videos.POST("/:id/deactivate", handler.Deactivate)
		videos.POST("/:id/views", handler.IncrementViews)
		videos.POST("/:id/likes", handler.IncrementLikes)
	}
}
