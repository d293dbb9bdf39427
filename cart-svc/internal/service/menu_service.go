package service

import (
	"context"
	"fmt"

	"overcooked-cart/cart-svc/internal/domain"
)

// MenuService serves the catalog carts are priced from.
type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *MenuService) Menu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	return s.repo.ListMenu(ctx, restaurantID)
}

func (s *MenuService) MenuItem(ctx context.Context, restaurantID, dishID int) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, restaurantID, dishID)
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
