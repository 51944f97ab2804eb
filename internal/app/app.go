package app

import (
	"go-empdir/internal/config"
	"go-empdir/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure and registers every module's
// routes on the router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	db, err := Connect(cfg)
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
		if err != nil {
			return err
		}
	} else {
		zap.L().Info("REDIS_ADDR not set, caching disabled")
	}

	registerModules(router, cfg, db, rdb)
	return nil
}

// Connect opens the GORM handle shared by every repository.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	return connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		5,
	)
}
