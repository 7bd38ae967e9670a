package main

import (
	"context"
	"os"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/config"
	"github.com/fhuszti/portfolio-ms-go/internal/db"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	mediaSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/media"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	logger.Init()

	if cfg.RedisAddr == "" {
		logger.Error(ctx, "❌  Redis not configured: this command requires a running Redis instance")
		os.Exit(1)
	}

	database, err := db.New(ctx, db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	dispatcher := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
	backlog := mediaSvc.NewThumbnailBacklog(mariadb.NewMediaRepository(database.DB), dispatcher, time.Now)

	runErr := backlog.EnqueueThumbnailBacklog(ctx)

	if err := dispatcher.Close(); err != nil {
		logger.Warnf(ctx, "task client close error: %v", err)
	}
	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}

	if runErr != nil {
		logger.Errorf(ctx, "❌  Thumbnail backlog failed: %v", runErr)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Thumbnail backlog enqueued")
}
