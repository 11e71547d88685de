package memory

import (
	"context"
	"sort"
	"sync"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repositories"
)

type CartRepository struct {
	mu     sync.RWMutex
	items  map[uint]models.CartItem
	nextID uint
}

func NewCartRepository() *CartRepository {
	return &CartRepository{
		items:  make(map[uint]models.CartItem),
		nextID: 1,
	}
}

func (r *CartRepository) FindByUserID(_ context.Context, userID uint) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.CartItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CartRepository) Create(_ context.Context, item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = *item
	return nil
}

func (r *CartRepository) UpdateQuantity(_ context.Context, id uint, quantity int) (*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	item.Quantity = quantity
	r.items[id] = item
	return &item, nil
}

func (r *CartRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
