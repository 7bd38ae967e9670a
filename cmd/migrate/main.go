package main

import (
	"context"
	"os"

	"github.com/fhuszti/portfolio-ms-go/internal/config"
	"github.com/fhuszti/portfolio-ms-go/internal/db"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/migration"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	logger.Init()

	database, err := db.New(ctx, db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		MultiStatements: true,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	migrateErr := migration.MigrateUp(ctx, database.DB)
	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	if migrateErr != nil {
		logger.Errorf(ctx, "❌  Migration up failed: %v", migrateErr)
		os.Exit(1)
	}

	logger.Info(ctx, "✅  Migrations applied successfully")
}
