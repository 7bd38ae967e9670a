package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fhuszti/portfolio-ms-go/internal/cache"
	"github.com/fhuszti/portfolio-ms-go/internal/config"
	"github.com/fhuszti/portfolio-ms-go/internal/db"
	workerHandler "github.com/fhuszti/portfolio-ms-go/internal/handler/worker"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/portfolio-ms-go/internal/storage"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	"github.com/fhuszti/portfolio-ms-go/internal/thumbnail"
	mediaSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/media"
	"github.com/hibiken/asynq"
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
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	database := initDb(ctx, cfg)
	strg := initStorage(ctx, cfg)

	repo := mariadb.NewMediaRepository(database.DB)
	ca := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
	thumbSvc := mediaSvc.NewThumbnailGenerator(repo, strg, thumbnail.NewGenerator(cfg.ThumbnailWidth), ca)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeGenerateThumbnail, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseGenerateThumbnailPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.GenerateThumbnailHandler(ctx, p, thumbSvc)
	})

	runWorker(ctx, mux, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

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
	return database
}

func initStorage(ctx context.Context, cfg *config.Settings) port.ObjectStore {
	strg, err := storage.New(ctx, cfg.StorageDriver, storage.ConfigFromSettings(cfg))
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise %s storage client: %v", cfg.StorageDriver, err)
		os.Exit(1)
	}
	if err := strg.InitBuckets(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise buckets: %v", err)
		os.Exit(1)
	}
	return strg
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 4})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// stops accepting new tasks and waits for in-flight ones (asynq's ShutdownTimeout, 8s by default)
	srv.Shutdown()

	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
