package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []any
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

// stalledPublisher never completes until its context is done.
type stalledPublisher struct{}

func (stalledPublisher) Publish(ctx context.Context, _ string, _ any) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stalledPublisher) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMessageServiceSendPersists(t *testing.T) {
	events := &recordingPublisher{}
	svc := NewMessageService(memory.NewMessageRepository(time.Now), events, discardLogger())
	ctx := context.Background()

	msg, err := svc.Send(ctx, &models.CreateMessageRequest{FromID: 1, ToID: 2, Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), msg.ID)
	assert.False(t, msg.Timestamp.IsZero())
	assert.Empty(t, events.events, "send alone does not emit the event")

	for _, userID := range []uint{1, 2} {
		history, err := svc.History(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []models.Message{*msg}, history)
	}
}

func TestMessageServicePublishCreated(t *testing.T) {
	events := &recordingPublisher{}
	svc := NewMessageService(memory.NewMessageRepository(time.Now), events, discardLogger())
	ctx := context.Background()

	msg, err := svc.Send(ctx, &models.CreateMessageRequest{FromID: 1, ToID: 2, Content: "hi"})
	require.NoError(t, err)
	svc.PublishCreated(ctx, msg)

	require.Len(t, events.events, 1)
	assert.Equal(t, "2", events.keys[0])
	event, ok := events.events[0].(models.MessageCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, EventMessageCreated, event.Type)
	assert.Equal(t, *msg, event.Message)
}

func TestMessageServicePublishFailureIsLoggedOnly(t *testing.T) {
	svc := NewMessageService(memory.NewMessageRepository(time.Now), &recordingPublisher{err: errors.New("broker down")}, discardLogger())

	msg, err := svc.Send(context.Background(), &models.CreateMessageRequest{FromID: 3, ToID: 4, Content: "still stored"})
	require.NoError(t, err)
	assert.NotPanics(t, func() { svc.PublishCreated(context.Background(), msg) })

	history, err := svc.History(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []models.Message{*msg}, history)
}

func TestMessageServicePublishIsBounded(t *testing.T) {
	svc := NewMessageService(memory.NewMessageRepository(time.Now), stalledPublisher{}, discardLogger())
	svc.publishTimeout = 50 * time.Millisecond

	msg, err := svc.Send(context.Background(), &models.CreateMessageRequest{FromID: 1, ToID: 2, Content: "x"})
	require.NoError(t, err)

	start := time.Now()
	svc.PublishCreated(context.Background(), msg)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewMessageServiceDefaults(t *testing.T) {
	svc := NewMessageService(memory.NewMessageRepository(time.Now), nil, nil)
	msg, err := svc.Send(context.Background(), &models.CreateMessageRequest{FromID: 1, ToID: 2, Content: "x"})
	require.NoError(t, err)
	assert.NotPanics(t, func() { svc.PublishCreated(context.Background(), msg) })
}
