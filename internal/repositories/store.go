package repositories

import (
	"context"
	"errors"
	"time"

	"marketplace-service/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// StoredTime normalises t to UTC at millisecond precision, the coarsest
// precision of the supported databases (MySQL datetime(3)). Records carry this
// value so what is pushed to a client equals what is later read back.
func StoredTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
}

type CartRepository interface {
	FindByUserID(ctx context.Context, userID uint) ([]models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	// UpdateQuantity returns ErrNotFound when no item has the given id.
	UpdateQuantity(ctx context.Context, id uint, quantity int) (*models.CartItem, error)
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id uint) error
}

type MessageRepository interface {
	// Create assigns ID and Timestamp.
	Create(ctx context.Context, msg *models.Message) error
	// FindByUserID returns messages sent or received by the user, oldest first.
	FindByUserID(ctx context.Context, userID uint) ([]models.Message, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// Store bundles the per-entity repositories of one backend.
type Store struct {
	Products ProductRepository
	Cart     CartRepository
	Messages MessageRepository
	Users    UserRepository
}
