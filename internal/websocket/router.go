package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/services"
)

// MessageSender persists a direct message and announces it once delivered.
type MessageSender interface {
	Send(ctx context.Context, req *models.CreateMessageRequest) (*models.Message, error)
	PublishCreated(ctx context.Context, msg *models.Message)
}

const (
	presenceTimeout   = 3 * time.Second
	presenceQueueSize = 256
)

type presenceUpdate struct {
	userID uint
	online bool
}

// Router dispatches inbound envelopes of one connection onto the registry,
// the subscription index and the message store. No reply frames are ever
// sent back to the originating connection.
type Router struct {
	registry      *ConnectionRegistry
	subscriptions *SubscriptionIndex
	messages      MessageSender
	presence      services.Presence
	logger        *slog.Logger
	now           func() time.Time

	// Presence writes are applied in order by RunPresence, off the read loops.
	presenceQueue chan presenceUpdate

	reviewSeq         atomic.Uint64
	reviewsBroadcast  atomic.Uint64
	messagesDelivered atomic.Uint64
	envelopesDropped  atomic.Uint64
}

func NewRouter(registry *ConnectionRegistry, subscriptions *SubscriptionIndex, messages MessageSender, presence services.Presence, logger *slog.Logger) *Router {
	if presence == nil {
		presence = services.NoopPresence{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		registry:      registry,
		subscriptions: subscriptions,
		messages:      messages,
		presence:      presence,
		logger:        logger,
		now:           time.Now,
		presenceQueue: make(chan presenceUpdate, presenceQueueSize),
	}
}

// RunPresence applies queued presence updates until ctx is done, then applies
// whatever is still queued and returns.
func (r *Router) RunPresence(ctx context.Context) {
	for {
		select {
		case u := <-r.presenceQueue:
			r.applyPresence(u)
		case <-ctx.Done():
			for {
				select {
				case u := <-r.presenceQueue:
					r.applyPresence(u)
				default:
					return
				}
			}
		}
	}
}

func (r *Router) applyPresence(u presenceUpdate) {
	ctx, cancel := context.WithTimeout(context.Background(), presenceTimeout)
	defer cancel()

	var err error
	if u.online {
		err = r.presence.SetUserOnline(ctx, u.userID)
	} else {
		err = r.presence.SetUserOffline(ctx, u.userID)
	}
	if err != nil {
		r.logger.Warn("Failed to update presence", "userID", u.userID, "online", u.online, "error", err)
	}
}

// queuePresence never blocks. Updates are dropped when the queue is full.
func (r *Router) queuePresence(userID uint, online bool) {
	select {
	case r.presenceQueue <- presenceUpdate{userID: userID, online: online}:
	default:
		r.logger.Warn("Presence queue full, dropping update", "userID", userID, "online", online)
	}
}

// HandleMessage processes a single frame. Any failure is logged and the
// connection stays open.
func (r *Router) HandleMessage(ctx context.Context, c *Client, raw []byte) {
	defer func() {
		if rec := recover(); rec != nil {
			r.envelopesDropped.Add(1)
			r.logger.Error("Panic while handling envelope", "clientID", c.ID(), "panic", rec, "stack", string(debug.Stack()))
		}
	}()

	env, err := ParseEnvelope(raw)
	if err != nil {
		r.envelopesDropped.Add(1)
		r.logger.Warn("Dropping envelope", "clientID", c.ID(), "error", err)
		return
	}

	switch e := env.(type) {
	case AuthEnvelope:
		r.handleAuth(c, e)
	case SubscribeReviewsEnvelope:
		r.handleSubscribe(c, e)
	case ReviewEnvelope:
		r.handleReview(c, e)
	case DirectMessageEnvelope:
		r.handleDirectMessage(ctx, c, e)
	case UnknownEnvelope:
		r.logger.Debug("Ignoring unknown envelope type", "clientID", c.ID(), "type", e.Kind)
	default:
		panic(fmt.Sprintf("unhandled envelope %T", env))
	}
}

func (r *Router) handleAuth(c *Client, e AuthEnvelope) {
	r.registry.Register(e.UserID, c)
	c.setUserID(e.UserID)
	r.logger.Info("Client authenticated", "clientID", c.ID(), "userID", e.UserID)
	r.queuePresence(e.UserID, true)
}

func (r *Router) handleSubscribe(c *Client, e SubscribeReviewsEnvelope) {
	if r.subscriptions.Subscribe(e.ProductID, c) {
		r.logger.Debug("Client subscribed to reviews", "clientID", c.ID(), "productID", e.ProductID)
	}
}

func (r *Router) handleReview(c *Client, e ReviewEnvelope) {
	review := models.Review{
		ID:        r.reviewSeq.Add(1),
		UserID:    e.Data.UserID,
		Username:  e.Data.Username,
		Rating:    e.Data.Rating,
		Comment:   e.Data.Comment,
		CreatedAt: r.now().UTC(),
	}

	delivered, err := r.subscriptions.PublishJSON(e.ProductID, ReviewPush{Type: MessageTypeReview, Data: review})
	if err != nil {
		r.logger.Error("Failed to broadcast review", "productID", e.ProductID, "error", err)
		return
	}
	r.reviewsBroadcast.Add(1)
	r.logger.Debug("Review broadcast", "clientID", c.ID(), "productID", e.ProductID, "reviewID", review.ID, "delivered", delivered)
}

func (r *Router) handleDirectMessage(ctx context.Context, c *Client, e DirectMessageEnvelope) {
	msg, err := r.messages.Send(ctx, e.Data)
	if err != nil {
		r.envelopesDropped.Add(1)
		r.logger.Error("Failed to store direct message", "clientID", c.ID(), "fromID", e.Data.FromID, "toID", e.Data.ToID, "error", err)
		return
	}

	r.deliver(msg)
	r.messages.PublishCreated(ctx, msg)
}

func (r *Router) deliver(msg *models.Message) {
	recipient, ok := r.registry.Lookup(msg.ToID)
	if !ok {
		r.logger.Debug("Recipient offline, message stored only", "messageID", msg.ID, "toID", msg.ToID)
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		r.logger.Error("Failed to encode direct message", "messageID", msg.ID, "error", err)
		return
	}
	if err := recipient.Send(data); err != nil {
		r.logger.Debug("Recipient not reachable", "messageID", msg.ID, "toID", msg.ToID, "error", err)
		return
	}
	r.messagesDelivered.Add(1)
}

// HandleClose removes every trace of c. Each step is isolated so a failure in
// one does not skip the other.
func (r *Router) HandleClose(c *Client) {
	r.cleanupStep(c, "subscriptions", func() error {
		topics := r.subscriptions.RemoveConnection(c)
		r.logger.Debug("Removed client subscriptions", "clientID", c.ID(), "topics", topics)
		return nil
	})

	if _, ok := c.UserID(); !ok {
		return
	}

	r.cleanupStep(c, "registry", func() error {
		for _, userID := range r.registry.UnregisterAll(c) {
			r.logger.Info("Client unregistered", "clientID", c.ID(), "userID", userID)
			r.queuePresence(userID, false)
		}
		return nil
	})
}

func (r *Router) cleanupStep(c *Client, step string, fn func() error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Panic during connection cleanup", "clientID", c.ID(), "step", step, "panic", rec)
		}
	}()
	if err := fn(); err != nil {
		r.logger.Warn("Connection cleanup step failed", "clientID", c.ID(), "step", step, "error", err)
	}
}

// RouterStats is a snapshot of router counters.
type RouterStats struct {
	ReviewsBroadcast  uint64 `json:"reviewsBroadcast"`
	MessagesDelivered uint64 `json:"messagesDelivered"`
	EnvelopesDropped  uint64 `json:"envelopesDropped"`
}

func (r *Router) Stats() RouterStats {
	return RouterStats{
		ReviewsBroadcast:  r.reviewsBroadcast.Load(),
		MessagesDelivered: r.messagesDelivered.Load(),
		EnvelopesDropped:  r.envelopesDropped.Load(),
	}
}
