package memory

import (
	"context"
	"sort"
	"sync"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repositories"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products map[uint]models.Product
	nextID   uint
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

func (r *ProductRepository) List(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (r *ProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}
