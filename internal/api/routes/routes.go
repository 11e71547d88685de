package routes

import (
	"log/slog"
	"net/http"

	"marketplace-service/internal/api/handlers"
	"marketplace-service/internal/api/middleware"
	"marketplace-service/internal/config"
	"marketplace-service/internal/repositories"
	"marketplace-service/internal/services"
	"marketplace-service/internal/websocket"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	wsHandler      *handlers.WSHandler
	productHandler *handlers.ProductHandler
	cartHandler    *handlers.CartHandler
	messageHandler *handlers.MessageHandler
	userHandler    *handlers.UserHandler
	rateLimitMW    *middleware.RateLimitMiddleware
}

// NewRouter wires services and handlers over the given store. A nil limiter
// disables rate limiting.
func NewRouter(
	cfg *config.Config,
	store repositories.Store,
	messageService *services.MessageService,
	hub *websocket.Hub,
	limiter services.RateLimiter,
) *Router {
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(cfg.WebSocket.AllowedOrigins))
	engine.Use(middleware.AccessLog(slog.Default()))

	var rateLimitMW *middleware.RateLimitMiddleware
	if limiter != nil {
		rateLimitMW = middleware.NewRateLimitMiddleware(limiter)
	}

	return &Router{
		engine:         engine,
		cfg:            cfg,
		wsHandler:      handlers.NewWSHandler(hub),
		productHandler: handlers.NewProductHandler(services.NewProductService(store.Products)),
		cartHandler:    handlers.NewCartHandler(services.NewCartService(store.Cart)),
		messageHandler: handlers.NewMessageHandler(messageService),
		userHandler:    handlers.NewUserHandler(services.NewUserService(store.Users), hub),
		rateLimitMW:    rateLimitMW,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// The realtime connection. Identity is asserted over the socket.
	r.engine.GET(r.cfg.WebSocket.Path, r.wsHandler.HandleWebSocket)

	api := r.engine.Group("/api")
	if r.rateLimitMW != nil {
		api.Use(r.rateLimitMW.RateLimitIP(r.cfg.RateLimit.Requests, r.cfg.RateLimit.Window))
	}
	{
		products := api.Group("/products")
		{
			products.GET("", r.productHandler.ListProducts)
			products.GET("/:id", r.productHandler.GetProduct)
			products.POST("", r.productHandler.CreateProduct)
		}

		cart := api.Group("/cart")
		{
			cart.GET("/:userId", r.cartHandler.GetCart)
			cart.POST("", r.cartHandler.AddToCart)
			cart.PATCH("/:id", r.cartHandler.UpdateCartItem)
			cart.DELETE("/:id", r.cartHandler.RemoveFromCart)
		}

		api.GET("/messages/:userId", r.messageHandler.GetMessages)

		users := api.Group("/users")
		{
			users.POST("", r.userHandler.Register)
			users.GET("/:id", r.userHandler.GetUser)
			users.GET("/:id/presence", r.userHandler.GetPresence)
		}

		api.GET("/ws/stats", r.wsHandler.GetStats)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
