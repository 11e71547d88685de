package services

import (
	"context"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repositories"
)

type CartService struct {
	repo repositories.CartRepository
}

func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) ListForUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *CartService) Add(ctx context.Context, req *models.CreateCartItemRequest) (*models.CartItem, error) {
	item := &models.CartItem{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, id uint, quantity int) (*models.CartItem, error) {
	return s.repo.UpdateQuantity(ctx, id, quantity)
}

func (s *CartService) Remove(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
