package auth

import (
	"go-empdir/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/auth", middleware.RateLimitByIP(1, 5), handler.Authenticate)
}
