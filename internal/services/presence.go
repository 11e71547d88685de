package services

import (
	"context"
	"time"
)

// Presence records which users hold a live connection.
type Presence interface {
	SetUserOnline(ctx context.Context, userID uint) error
	SetUserOffline(ctx context.Context, userID uint) error
}

// RateLimiter reports whether a request keyed by key is within limit per window.
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// NoopPresence is used when Redis is not configured.
type NoopPresence struct{}

func (NoopPresence) SetUserOnline(context.Context, uint) error  { return nil }
func (NoopPresence) SetUserOffline(context.Context, uint) error { return nil }
