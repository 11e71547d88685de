package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace-service/internal/config"
	"marketplace-service/internal/database"
	"marketplace-service/internal/models"
	"marketplace-service/internal/repositories"
	"marketplace-service/internal/repositories/postgres"
	"marketplace-service/internal/services"
)

// Merchants are created first so their ids match the merchantId of the
// sample products.
var merchants = []models.RegisterUserRequest{
	{Username: "watchworks", Password: "123456", IsMerchant: true},
	{Username: "soundhouse", Password: "123456", IsMerchant: true},
	{Username: "urbangear", Password: "123456", IsMerchant: true},
}

var buyers = []models.RegisterUserRequest{
	{Username: "alice", Password: "123456"},
	{Username: "bob", Password: "123456"},
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Store.Driver == config.StoreDriverMemory {
		slog.Error("Seeding needs a database; set STORE_DRIVER to postgres or mysql")
		os.Exit(1)
	}

	slog.Info("Starting database seeding...", "driver", cfg.Store.Driver)

	// Connect to database
	db, err := database.NewGormConnection(cfg.Store)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connection established")

	store := postgres.NewStore(db)
	userService := services.NewUserService(store.Users)
	ctx := context.Background()

	// Seed users
	slog.Info("Creating users...")
	for _, req := range append(merchants, buyers...) {
		user, err := userService.Register(ctx, &req)
		if err != nil {
			slog.Warn("User might already exist", "username", req.Username, "error", err)
			continue
		}
		slog.Info("Created user", "username", user.Username, "id", user.ID, "merchant", user.IsMerchant)
	}

	// Seed products
	slog.Info("Creating products...")
	if err := seedProducts(ctx, store); err != nil {
		slog.Error("Failed to seed products", "error", err)
		os.Exit(1)
	}

	slog.Info("Database seeding completed successfully!")
}

// seedProducts inserts the sample catalog into an empty products table.
func seedProducts(ctx context.Context, store repositories.Store) error {
	existing, err := store.Products.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("Products already present, skipping", "count", len(existing))
		return nil
	}

	for _, product := range repositories.SampleProducts() {
		if err := store.Products.Create(ctx, &product); err != nil {
			return err
		}
		slog.Info("Created product", "name", product.Name, "id", product.ID)
	}
	return nil
}
