package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repositories"
)

const defaultPublishTimeout = 2 * time.Second

type MessageService struct {
	repo           repositories.MessageRepository
	events         EventPublisher
	logger         *slog.Logger
	publishTimeout time.Duration
}

func NewMessageService(repo repositories.MessageRepository, events EventPublisher, logger *slog.Logger) *MessageService {
	if events == nil {
		events = NoopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageService{
		repo:           repo,
		events:         events,
		logger:         logger.With("component", "messages"),
		publishTimeout: defaultPublishTimeout,
	}
}

// Send persists the message. The stored record carries the server-assigned id
// and timestamp. The created event is not emitted here; see PublishCreated.
func (s *MessageService) Send(ctx context.Context, req *models.CreateMessageRequest) (*models.Message, error) {
	msg := &models.Message{
		FromID:  req.FromID,
		ToID:    req.ToID,
		Content: req.Content,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}
	return msg, nil
}

// PublishCreated emits the message.created event keyed by recipient. It waits
// at most the publish timeout and only logs failures.
func (s *MessageService) PublishCreated(ctx context.Context, msg *models.Message) {
	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	event := models.MessageCreatedEvent{Type: EventMessageCreated, Message: *msg}
	if err := s.events.Publish(ctx, strconv.FormatUint(uint64(msg.ToID), 10), event); err != nil {
		s.logger.Warn("Failed to publish message event", "messageID", msg.ID, "error", err)
	}
}

func (s *MessageService) History(ctx context.Context, userID uint) ([]models.Message, error) {
	return s.repo.FindByUserID(ctx, userID)
}
