// Package routes wires the HTTP handlers onto the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reelhub/reelhub/internal/interfaces/http/handlers"
)

// SetupCategoryRoutes configures category routes under /admin.
func SetupCategoryRoutes(admin *gin.RouterGroup, handler *handlers.CategoryHandler) {
	categories := admin.Group("/categories")
	{
		categories.POST("", handler.Create)
		categories.GET("", handler.List)
		categories.GET("/all", handler.ListAll)
		categories.GET("/:id", handler.Get)
		categories.PATCH("/:id", handler.Update)
		categories.DELETE("/:id", handler.Delete)
		categories.POST("/:id/activate", handler.Activate)
		categories.POST("/:id/deactivate", handler.Deactivate)
	}
}
