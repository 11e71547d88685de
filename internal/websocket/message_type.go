package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"marketplace-service/internal/models"

	"github.com/go-playground/validator/v10"
)

// MessageType is the value of the "type" field of an envelope.
type MessageType string

// Client -> server envelope types
const (
	MessageTypeAuth             MessageType = "auth"
	MessageTypeSubscribeReviews MessageType = "subscribe_reviews"
	MessageTypeReview           MessageType = "review"
	MessageTypeMessage          MessageType = "message"
)

func (mt MessageType) String() string {
	return string(mt)
}

// IsKnown reports whether the router has a case for this type.
func (mt MessageType) IsKnown() bool {
	switch mt {
	case MessageTypeAuth, MessageTypeSubscribeReviews, MessageTypeReview, MessageTypeMessage:
		return true
	default:
		return false
	}
}

var (
	// ErrMalformedEnvelope covers frames that are not a JSON object with a string "type".
	ErrMalformedEnvelope = errors.New("malformed envelope")
	// ErrInvalidPayload covers known envelope types whose fields fail shape checks.
	ErrInvalidPayload = errors.New("invalid envelope payload")
)

// Envelope is the closed set of inbound envelope kinds. The unexported method
// keeps implementations inside this package.
type Envelope interface {
	Type() MessageType
	isEnvelope()
}

type AuthEnvelope struct {
	UserID uint `json:"userId" validate:"gt=0"`
}

type SubscribeReviewsEnvelope struct {
	ProductID uint `json:"productId" validate:"gt=0"`
}

type ReviewData struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	Comment  string `json:"comment"`
}

type ReviewEnvelope struct {
	ProductID uint        `json:"productId" validate:"gt=0"`
	Data      *ReviewData `json:"data" validate:"required"`
}

type DirectMessageEnvelope struct {
	Data *models.CreateMessageRequest `json:"data" validate:"required"`
}

// UnknownEnvelope carries a well-formed frame whose type the router does not handle.
type UnknownEnvelope struct {
	Kind MessageType
}

func (AuthEnvelope) Type() MessageType             { return MessageTypeAuth }
func (SubscribeReviewsEnvelope) Type() MessageType { return MessageTypeSubscribeReviews }
func (ReviewEnvelope) Type() MessageType           { return MessageTypeReview }
func (DirectMessageEnvelope) Type() MessageType    { return MessageTypeMessage }
func (e UnknownEnvelope) Type() MessageType        { return e.Kind }

func (AuthEnvelope) isEnvelope()             {}
func (SubscribeReviewsEnvelope) isEnvelope() {}
func (ReviewEnvelope) isEnvelope()           {}
func (DirectMessageEnvelope) isEnvelope()    {}
func (UnknownEnvelope) isEnvelope()          {}

var validate = validator.New()

// ParseEnvelope decodes one text frame. Errors wrap ErrMalformedEnvelope or
// ErrInvalidPayload. An unrecognised type is not an error.
func ParseEnvelope(raw []byte) (Envelope, error) {
	var head struct {
		Type *MessageType `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if head.Type == nil || *head.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedEnvelope)
	}

	switch *head.Type {
	case MessageTypeAuth:
		return decodePayload[AuthEnvelope](raw)
	case MessageTypeSubscribeReviews:
		return decodePayload[SubscribeReviewsEnvelope](raw)
	case MessageTypeReview:
		return decodePayload[ReviewEnvelope](raw)
	case MessageTypeMessage:
		return decodePayload[DirectMessageEnvelope](raw)
	default:
		return UnknownEnvelope{Kind: *head.Type}, nil
	}
}

func decodePayload[T Envelope](raw []byte) (Envelope, error) {
	var env T
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := validate.Struct(env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return env, nil
}

// ReviewPush is the server -> client frame sent to review subscribers.
type ReviewPush struct {
	Type MessageType   `json:"type"`
	Data models.Review `json:"data"`
}
