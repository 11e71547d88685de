package postgres

import (
	"errors"

	"marketplace-service/internal/repositories"

	"gorm.io/gorm"
)

// NewStore returns a gorm-backed store. The same code serves postgres and mysql.
func NewStore(db *gorm.DB) repositories.Store {
	return repositories.Store{
		Products: NewProductRepository(db),
		Cart:     NewCartRepository(db),
		Messages: NewMessageRepository(db),
		Users:    NewUserRepository(db),
	}
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return err
}
