package websocket

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var errClosedConnection = errors.New("connection closed")

// mockConn implements Conn. Frames pushed with deliver are returned by
// ReadMessage; written frames are recorded.
type mockConn struct {
	mu       sync.Mutex
	messages [][]byte
	closed   bool

	inbox     chan []byte
	closeCh   chan struct{}
	closeOnce sync.Once
}

func newMockConn() *mockConn {
	return &mockConn{
		inbox:   make(chan []byte, 16),
		closeCh: make(chan struct{}),
	}
}

func (m *mockConn) deliver(frame string) {
	m.inbox <- []byte(frame)
}

func (m *mockConn) ReadMessage() (int, []byte, error) {
	select {
	case data := <-m.inbox:
		return websocket.TextMessage, data, nil
	case <-m.closeCh:
		return 0, nil, errClosedConnection
	}
}

func (m *mockConn) WriteMessage(_ int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosedConnection
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockConn) SetReadLimit(int64)                {}
func (m *mockConn) SetReadDeadline(time.Time) error   { return nil }
func (m *mockConn) SetWriteDeadline(time.Time) error  { return nil }
func (m *mockConn) SetPongHandler(func(string) error) {}

func (m *mockConn) Close() error {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.mu.Unlock()
		close(m.closeCh)
	})
	return nil
}

func (m *mockConn) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestClient returns a client whose loops are not running, so queued
// frames can be read straight from its send channel.
func createTestClient() *Client {
	opts := DefaultClientOptions()
	opts.SendBuffer = 8
	opts.PongWait = 0
	return NewClient(newMockConn(), opts, discardLogger())
}

func nextFrame(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case data := <-c.send:
		return data
	case <-time.After(time.Second):
		t.Fatalf("no frame queued for client %s", c.ID())
		return nil
	}
}

func assertNoFrame(t *testing.T, c *Client) {
	t.Helper()
	select {
	case data := <-c.send:
		t.Fatalf("unexpected frame for client %s: %s", c.ID(), data)
	default:
	}
}
