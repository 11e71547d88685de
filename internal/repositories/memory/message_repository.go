package memory

import (
	"context"
	"sync"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repositories"
)

// MessageRepository keeps messages in insertion order, which is also id order.
type MessageRepository struct {
	mu       sync.RWMutex
	messages []models.Message
	nextID   uint
	now      func() time.Time
}

func NewMessageRepository(now func() time.Time) *MessageRepository {
	return &MessageRepository{
		nextID: 1,
		now:    now,
	}
}

func (r *MessageRepository) Create(_ context.Context, msg *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.ID = r.nextID
	msg.Timestamp = repositories.StoredTime(r.now())
	r.nextID++
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *MessageRepository) FindByUserID(_ context.Context, userID uint) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Message, 0)
	for _, m := range r.messages {
		if m.FromID == userID || m.ToID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}
