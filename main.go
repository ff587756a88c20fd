// main.go
package main

import (
	"context"
	"log"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/data/repository/memory"
	"movie-catalog/internal/data/seed"
	"movie-catalog/internal/wire"
	"movie-catalog/migrations"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/telemetry"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.String("storage", config.App.Storage),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	shutdownTelemetry, err := telemetry.Init(ctx, config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Error("Failed to shut down telemetry", zap.Error(err))
		}
	}()

	// Select storage
	var uow repository.UnitOfWorkFactory
	switch config.App.Storage {
	case utils.StorageMemory:
		uow = memory.NewUnitOfWorkFactory(memory.NewStore())
		logger.Info("Using in-memory storage")

	default:
		if config.Database.Migrate {
			if err := database.Migrate(database.ConnString(config.Database), migrations.FS); err != nil {
				logger.Fatal("Failed to run migrations", zap.Error(err))
			}
			logger.Info("Database migrations applied")
		}

		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		uow = repository.NewUnitOfWorkFactory(db, logger)
	}

	if config.App.IsDevelopment() && config.App.Seed {
		if err := seed.Run(ctx, uow, logger); err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	// Wire all dependencies
	app := wire.Wiring(uow, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
