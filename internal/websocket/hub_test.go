package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace-service/internal/config"
	"marketplace-service/internal/models"
	"marketplace-service/internal/repositories/memory"
	"marketplace-service/internal/services"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	messages := services.NewMessageService(memory.NewMessageRepository(time.Now), nil, discardLogger())
	hub := NewHub(config.WebSocketConfig{
		Path:       "/ws",
		SendBuffer: 16,
		WriteWait:  time.Second,
	}, messages, nil, discardLogger())

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(func() {
		hub.Stop()
		server.Close()
	})
	return hub, server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func writeFrame(t *testing.T, conn *websocket.Conn, frame string) {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
}

func readFrame(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	messageType, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, messageType)
	return data
}

func TestHubDirectMessageEndToEnd(t *testing.T) {
	hub, server := newTestHub(t)
	alice := dial(t, server)
	bob := dial(t, server)

	writeFrame(t, alice, `{"type":"auth","userId":1}`)
	writeFrame(t, bob, `{"type":"auth","userId":2}`)
	require.Eventually(t, func() bool { return hub.IsOnline(1) && hub.IsOnline(2) }, time.Second, 10*time.Millisecond)

	writeFrame(t, alice, `{"type":"message","data":{"fromId":1,"toId":2,"content":"hello bob"}}`)

	var msg models.Message
	require.NoError(t, json.Unmarshal(readFrame(t, bob), &msg))
	assert.Equal(t, uint(1), msg.ID)
	assert.Equal(t, uint(1), msg.FromID)
	assert.Equal(t, uint(2), msg.ToID)
	assert.Equal(t, "hello bob", msg.Content)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestHubReviewBroadcastEndToEnd(t *testing.T) {
	hub, server := newTestHub(t)
	watcher := dial(t, server)
	author := dial(t, server)

	writeFrame(t, watcher, `{"type":"subscribe_reviews","productId":5}`)
	require.Eventually(t, func() bool { return hub.Subscriptions().SubscriberCount(5) == 1 }, time.Second, 10*time.Millisecond)

	writeFrame(t, author, `{"type":"review","productId":5,"data":{"userId":3,"username":"dana","rating":5,"comment":"love it"}}`)

	var push ReviewPush
	require.NoError(t, json.Unmarshal(readFrame(t, watcher), &push))
	assert.Equal(t, MessageTypeReview, push.Type)
	assert.Equal(t, "dana", push.Data.Username)
	assert.Equal(t, 5, push.Data.Rating)
}

func TestHubPreservesPerConnectionOrder(t *testing.T) {
	hub, server := newTestHub(t)
	sender := dial(t, server)
	receiver := dial(t, server)

	writeFrame(t, receiver, `{"type":"auth","userId":2}`)
	require.Eventually(t, func() bool { return hub.IsOnline(2) }, time.Second, 10*time.Millisecond)

	want := []string{"one", "two", "three", "four", "five"}
	for _, content := range want {
		writeFrame(t, sender, `{"type":"message","data":{"fromId":1,"toId":2,"content":"`+content+`"}}`)
	}

	for _, content := range want {
		var msg models.Message
		require.NoError(t, json.Unmarshal(readFrame(t, receiver), &msg))
		assert.Equal(t, content, msg.Content)
	}
}

func TestHubCleansUpOnDisconnect(t *testing.T) {
	hub, server := newTestHub(t)
	conn := dial(t, server)

	writeFrame(t, conn, `{"type":"auth","userId":4}`)
	writeFrame(t, conn, `{"type":"subscribe_reviews","productId":1}`)
	require.Eventually(t, func() bool {
		return hub.IsOnline(4) && hub.Subscriptions().SubscriberCount(1) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		stats := hub.Stats()
		return !hub.IsOnline(4) && stats.Topics == 0 && stats.Connections == 0 && stats.Authenticated == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHubMalformedFrameKeepsConnectionOpen(t *testing.T) {
	hub, server := newTestHub(t)
	conn := dial(t, server)

	writeFrame(t, conn, `{{{`)
	writeFrame(t, conn, `{"type":"auth","userId":8}`)

	assert.Eventually(t, func() bool { return hub.IsOnline(8) }, time.Second, 10*time.Millisecond)
	assert.Equal(t, uint64(1), hub.Stats().EnvelopesDropped)
}

func TestHubStopClosesClients(t *testing.T) {
	hub, server := newTestHub(t)
	conn := dial(t, server)
	writeFrame(t, conn, `{"type":"auth","userId":1}`)
	require.Eventually(t, func() bool { return hub.IsOnline(1) }, time.Second, 10*time.Millisecond)

	hub.Stop()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Eventually(t, func() bool { return hub.Stats().Connections == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubAttachAfterStop(t *testing.T) {
	hub, _ := newTestHub(t)
	hub.Stop()

	conn := newMockConn()
	client := hub.Attach(conn)

	assert.False(t, client.IsOpen())
	assert.True(t, conn.isClosed())
}

func TestClientSlowConsumerIsClosed(t *testing.T) {
	opts := DefaultClientOptions()
	opts.SendBuffer = 1
	opts.PongWait = 0
	conn := newMockConn()
	c := NewClient(conn, opts, discardLogger())

	require.NoError(t, c.Send([]byte(`{}`)))
	assert.ErrorIs(t, c.Send([]byte(`{}`)), ErrSlowClient)
	assert.False(t, c.IsOpen())
	assert.True(t, conn.isClosed())
	assert.ErrorIs(t, c.Send([]byte(`{}`)), ErrClientDisconnected)
}

func TestDefaultClientOptionsDisableKeepalive(t *testing.T) {
	opts := DefaultClientOptions()
	assert.Zero(t, opts.PongWait)
	assert.Positive(t, opts.SendBuffer)
}

func TestHubStopFlushesPresence(t *testing.T) {
	presence := newFakePresence()
	messages := services.NewMessageService(memory.NewMessageRepository(time.Now), nil, discardLogger())
	hub := NewHub(config.WebSocketConfig{SendBuffer: 4}, messages, presence, discardLogger())

	conn := newMockConn()
	hub.Attach(conn)
	conn.deliver(`{"type":"auth","userId":4}`)
	require.Eventually(t, func() bool { return presence.isOnline(4) }, time.Second, 5*time.Millisecond)

	hub.Stop()

	assert.Equal(t, []uint{4}, presence.offlineIDs())
	assert.False(t, presence.isOnline(4))
}
