// Package memory is the in-process data store. Each table is a map guarded by
// its own mutex with a monotonic id counter starting at 1.
package memory

import (
	"context"
	"fmt"
	"time"

	"marketplace-service/internal/repositories"
)

// NewStore returns an empty store seeded with the sample catalog.
func NewStore() (repositories.Store, error) {
	products := NewProductRepository()
	for _, p := range repositories.SampleProducts() {
		if err := products.Create(context.Background(), &p); err != nil {
			return repositories.Store{}, fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}

	return repositories.Store{
		Products: products,
		Cart:     NewCartRepository(),
		Messages: NewMessageRepository(time.Now),
		Users:    NewUserRepository(time.Now),
	}, nil
}
