package models

import "time"

/** --------------------ENTITIES-------------------- */
// Message is a persisted direct message between two users. The JSON form is
// pushed verbatim to an online recipient, so its shape is part of the wire protocol.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FromID    uint      `gorm:"not null;index" json:"fromId"`
	ToID      uint      `gorm:"not null;index" json:"toId"`
	Content   string    `gorm:"not null" json:"content"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

/** -------------------- DTOs -------------------- */
type CreateMessageRequest struct {
	FromID  uint   `json:"fromId" validate:"required,gt=0"`
	ToID    uint   `json:"toId" validate:"required,gt=0"`
	Content string `json:"content" validate:"required"`
}

// MessageCreatedEvent is emitted to the event stream after a message is stored.
type MessageCreatedEvent struct {
	Type    string  `json:"type"`
	Message Message `json:"message"`
}
