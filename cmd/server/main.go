package main

// @title           Marketplace Service API
// @version         1.0
// @description     Catalog, cart and messaging API for the marketplace demo. Realtime traffic uses the websocket endpoint.
// @host            localhost:8080
// @BasePath        /api
// @schemes         http https

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "marketplace-service/docs"
	"marketplace-service/internal/adapters/kafka"
	"marketplace-service/internal/api/routes"
	"marketplace-service/internal/config"
	"marketplace-service/internal/database"
	"marketplace-service/internal/repositories"
	"marketplace-service/internal/repositories/memory"
	"marketplace-service/internal/repositories/postgres"
	"marketplace-service/internal/services"
	"marketplace-service/internal/websocket"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Server.SlogLevel()}))
	slog.SetDefault(logger)
	if cfg.Server.SlogLevel() > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	slog.Info("Starting marketplace server", "storeDriver", cfg.Store.Driver)

	// Initialize data store
	store, err := openStore(cfg.Store)
	if err != nil {
		slog.Error("Failed to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}

	// Optional Redis for presence and rate limiting
	var presence services.Presence = services.NoopPresence{}
	var limiter services.RateLimiter
	if cfg.Redis.Enabled() {
		redisClient, err := database.NewRedisConnection(cfg.Redis)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		redisService := services.NewRedisService(redisClient)
		presence = redisService
		limiter = redisService
	}

	// Optional Kafka event stream
	var events services.EventPublisher = services.NoopPublisher{}
	if cfg.Kafka.Enabled() {
		events = kafka.NewPublisher(cfg.Kafka, logger)
		slog.Info("Publishing message events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.MessageTopic)
	}
	defer func() {
		if err := events.Close(); err != nil {
			slog.Warn("Failed to close event publisher", "error", err)
		}
	}()

	messageService := services.NewMessageService(store.Messages, events, logger)

	// Initialize WebSocket hub
	hub := websocket.NewHub(cfg.WebSocket, messageService, presence, logger)

	router := routes.NewRouter(cfg, store, messageService, hub, limiter)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", server.Addr, "wsPath", cfg.WebSocket.Path)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Hijacked websocket connections are not tracked by Shutdown.
	hub.Stop()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped", "stats", hub.Stats())
}

func openStore(cfg config.StoreConfig) (repositories.Store, error) {
	if cfg.Driver == config.StoreDriverMemory {
		return memory.NewStore()
	}

	db, err := database.NewGormConnection(cfg)
	if err != nil {
		return repositories.Store{}, err
	}
	return postgres.NewStore(db), nil
}
