package employee

import (
	"go-empdir/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	employees := r.Group("/employee")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("/list", handler.List)
		employees.POST("/new", handler.Create)
		employees.GET("/:id", handler.GetByID)
		employees.PUT("/:id/edit", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
