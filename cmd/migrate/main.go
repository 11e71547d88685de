package main

import (
	"log/slog"
	"os"

	"marketplace-service/internal/config"
	"marketplace-service/internal/database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Store.Driver == config.StoreDriverMemory {
		slog.Info("Memory store has no schema to migrate")
		return
	}

	slog.Info("Starting database migration...", "driver", cfg.Store.Driver)

	// Connecting runs the auto-migration and index setup
	db, err := database.NewGormConnection(cfg.Store)
	if err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Failed to get database instance", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		slog.Error("Failed to ping database", "error", err)
		os.Exit(1)
	}

	slog.Info("Database migration completed successfully!")
}
