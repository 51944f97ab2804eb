package app

import (
	"go-empdir/internal/auth"
	"go-empdir/internal/config"
	"go-empdir/internal/employee"
	"go-empdir/internal/middleware"
	"go-empdir/internal/position"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
) {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo)
	positionService := position.NewService(positionRepo, rdb)
	authService := auth.NewService(employeeRepo, cfg.Auth.JWTSecret)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	positionHandler := position.NewHandler(positionService)
	authHandler := auth.NewHandler(authService)

	// --- Routes ---
	router.Use(middleware.RequestID())

	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
		position.RegisterRoutes(api, positionHandler)
		auth.RegisterRoutes(api, authHandler)
	}
}
