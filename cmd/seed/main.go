// Command seed populates the positions table from the external positions
// feed. It is an environment-setup step, run once, never at runtime.
package main

import (
	"context"
	"net/http"
	"time"

	"go-empdir/internal/app"
	"go-empdir/internal/config"
	"go-empdir/internal/position"
	"go-empdir/internal/shared/connection"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	db, err := app.Connect(cfg)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		if rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5); err != nil {
			logger.Fatal("connect redis failed", zap.Error(err))
		}
	}

	repo := position.NewRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// Re-running the seed against a populated table would duplicate
	// titles; treat it as already done.
	count, err := repo.Count(ctx)
	if err != nil {
		logger.Fatal("count positions failed", zap.Error(err))
	}
	if count > 0 {
		logger.Info("positions already seeded, nothing to do", zap.Int64("rows", count))
		return
	}

	importer := position.NewImporter(repo, &http.Client{Timeout: 30 * time.Second}, rdb)
	rows, err := importer.Import(ctx, cfg.Seed.PositionsFeedURL)
	if err != nil {
		logger.Fatal("position import failed", zap.Error(err))
	}

	logger.Info("position import finished", zap.Int("rows", rows))
}
