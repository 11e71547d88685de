package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"marketplace-service/internal/config"
	"marketplace-service/internal/services"

	"github.com/gorilla/websocket"
)

// Hub owns the connection registry, the subscription index and the router,
// and keeps track of every live client so they can be closed on shutdown.
type Hub struct {
	registry      *ConnectionRegistry
	subscriptions *SubscriptionIndex
	router        *Router
	upgrader      websocket.Upgrader
	opts          ClientOptions

	mu      sync.Mutex
	clients map[*Client]struct{}
	// live counts attached clients whose close handling has not finished.
	live sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	stopPresence context.CancelFunc
	presenceDone chan struct{}

	logger *slog.Logger
}

func NewHub(cfg config.WebSocketConfig, messages MessageSender, presence services.Presence, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "websocket")

	opts := DefaultClientOptions()
	if cfg.SendBuffer > 0 {
		opts.SendBuffer = cfg.SendBuffer
	}
	if cfg.MaxMessageSize > 0 {
		opts.MaxMessageSize = cfg.MaxMessageSize
	}
	if cfg.WriteWait > 0 {
		opts.WriteWait = cfg.WriteWait
	}
	opts.PongWait = cfg.PongWait

	registry := NewConnectionRegistry()
	subscriptions := NewSubscriptionIndex()
	ctx, cancel := context.WithCancel(context.Background())
	presenceCtx, stopPresence := context.WithCancel(context.Background())

	h := &Hub{
		registry:      registry,
		subscriptions: subscriptions,
		router:        NewRouter(registry, subscriptions, messages, presence, logger),
		upgrader:      NewUpgrader(cfg.AllowedOrigins),
		opts:          opts,
		clients:       make(map[*Client]struct{}),
		ctx:           ctx,
		cancel:        cancel,
		stopPresence:  stopPresence,
		presenceDone:  make(chan struct{}),
		logger:        logger,
	}

	go func() {
		defer close(h.presenceDone)
		h.router.RunPresence(presenceCtx)
	}()
	return h
}

func (h *Hub) Registry() *ConnectionRegistry {
	return h.registry
}

func (h *Hub) Subscriptions() *SubscriptionIndex {
	return h.subscriptions
}

// ServeWS upgrades the request and starts the client loops.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade WebSocket connection", "remote", r.RemoteAddr, "error", err)
		return
	}

	client := h.Attach(conn)
	h.logger.Info("New WebSocket connection established", "clientID", client.ID(), "remote", r.RemoteAddr)
}

// Attach adopts an established transport and starts serving it.
func (h *Hub) Attach(conn Conn) *Client {
	client := NewClient(conn, h.opts, h.logger)

	h.mu.Lock()
	if h.ctx.Err() != nil {
		h.mu.Unlock()
		client.Close()
		return client
	}
	h.clients[client] = struct{}{}
	h.live.Add(1)
	h.mu.Unlock()

	client.Start(h.ctx, h)
	return client
}

func (h *Hub) HandleMessage(ctx context.Context, c *Client, raw []byte) {
	h.router.HandleMessage(ctx, c, raw)
}

func (h *Hub) HandleClose(c *Client) {
	h.router.HandleClose(c)

	h.mu.Lock()
	_, tracked := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if tracked {
		h.live.Done()
	}

	h.logger.Info("WebSocket connection closed", "clientID", c.ID())
}

// IsOnline reports whether a connection is registered for userID.
func (h *Hub) IsOnline(userID uint) bool {
	c, ok := h.registry.Lookup(userID)
	return ok && c.IsOpen()
}

const stopGracePeriod = 5 * time.Second

// Stop closes every live client, waits for their close handling, then flushes
// pending presence updates. Safe to call more than once.
func (h *Hub) Stop() {
	h.mu.Lock()
	h.cancel()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.Close()
	}

	cleaned := make(chan struct{})
	go func() {
		h.live.Wait()
		close(cleaned)
	}()
	select {
	case <-cleaned:
	case <-time.After(stopGracePeriod):
		h.logger.Warn("Timed out waiting for client cleanup")
	}

	h.stopPresence()
	<-h.presenceDone
	h.logger.Info("WebSocket hub stopped", "closedClients", len(clients))
}

type Stats struct {
	Connections   int `json:"connections"`
	Authenticated int `json:"authenticatedUsers"`
	Topics        int `json:"topics"`
	RouterStats
}

func (h *Hub) Stats() Stats {
	h.mu.Lock()
	connections := len(h.clients)
	h.mu.Unlock()

	return Stats{
		Connections:   connections,
		Authenticated: h.registry.Len(),
		Topics:        h.subscriptions.TopicCount(),
		RouterStats:   h.router.Stats(),
	}
}
