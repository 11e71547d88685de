package websocket

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var (
	ErrClientDisconnected = errors.New("client disconnected")
	ErrSlowClient         = errors.New("client send buffer full")
)

// Conn is the subset of *websocket.Conn used by a Client.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// MessageHandler receives every inbound frame of a client, in order, and is
// told exactly once when the client is gone.
type MessageHandler interface {
	HandleMessage(ctx context.Context, c *Client, raw []byte)
	HandleClose(c *Client)
}

type ClientOptions struct {
	SendBuffer     int
	MaxMessageSize int64
	WriteWait      time.Duration
	// PongWait of zero disables ping/pong keepalive.
	PongWait time.Duration
}

func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		SendBuffer:     256,
		MaxMessageSize: 64 * 1024,
		WriteWait:      10 * time.Second,
	}
}

// Client is one live transport connection. Its identity is the pointer itself.
type Client struct {
	id     string
	conn   Conn
	send   chan []byte
	opts   ClientOptions
	logger *slog.Logger

	// userID is zero until the connection authenticates.
	userID atomic.Uint64

	closed    atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
}

func NewClient(conn Conn, opts ClientOptions, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New().String()
	return &Client{
		id:     id,
		conn:   conn,
		send:   make(chan []byte, opts.SendBuffer),
		opts:   opts,
		logger: logger.With("clientID", id),
		done:   make(chan struct{}),
	}
}

func (c *Client) ID() string {
	return c.id
}

// UserID returns the identity asserted by the last auth envelope.
func (c *Client) UserID() (uint, bool) {
	id := c.userID.Load()
	return uint(id), id != 0
}

func (c *Client) setUserID(id uint) {
	c.userID.Store(uint64(id))
}

// IsOpen reports whether frames may still be queued for this client.
func (c *Client) IsOpen() bool {
	return !c.closed.Load()
}

// Done is closed when the client closes.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close marks the client closed and closes the transport, which in turn ends
// the read loop and triggers close handling. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.done)
		if err := c.conn.Close(); err != nil {
			c.logger.Debug("Error closing connection", "error", err)
		}
	})
}

// Send queues one already-encoded frame. It never blocks: a client whose queue
// is full is closed and ErrSlowClient is returned.
func (c *Client) Send(data []byte) error {
	if !c.IsOpen() {
		return ErrClientDisconnected
	}

	select {
	case <-c.done:
		return ErrClientDisconnected
	default:
	}

	select {
	case c.send <- data:
		return nil
	default:
		c.logger.Warn("Send buffer full, closing client")
		c.Close()
		return ErrSlowClient
	}
}

// Start runs the write loop and the read loop in their own goroutines.
func (c *Client) Start(ctx context.Context, handler MessageHandler) {
	go c.writePump()
	go c.readPump(ctx, handler)
}

func (c *Client) readPump(ctx context.Context, handler MessageHandler) {
	defer func() {
		c.Close()
		handler.HandleClose(c)
	}()

	c.conn.SetReadLimit(c.opts.MaxMessageSize)
	if c.opts.PongWait > 0 {
		c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
		c.conn.SetPongHandler(func(string) error {
			return c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
		})
	}

	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && c.IsOpen() {
				c.logger.Warn("WebSocket read error", "error", err)
			} else {
				c.logger.Debug("WebSocket connection closed", "error", err)
			}
			return
		}

		if messageType != websocket.TextMessage {
			c.logger.Warn("Ignoring non-text frame", "messageType", messageType)
			continue
		}

		handler.HandleMessage(ctx, c, data)
	}
}

func (c *Client) writePump() {
	var pings <-chan time.Time
	if c.opts.PongWait > 0 {
		ticker := time.NewTicker(c.opts.PongWait * 9 / 10)
		defer ticker.Stop()
		pings = ticker.C
	}

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Debug("Error writing message", "error", err)
				c.Close()
				return
			}

		case <-pings:
			c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.logger.Debug("Error sending ping", "error", err)
				c.Close()
				return
			}

		case <-c.done:
			return
		}
	}
}
