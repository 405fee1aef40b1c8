// Package cart manages the per-user shopping cart.
package cart

import (
	"context"
	"fmt"

	cartRepo "parenthub/database/repository/cart"
	catalogRepo "parenthub/database/repository/catalog"
	"parenthub/models"

	"github.com/google/uuid"
)

// Service wraps cart persistence with product resolution: a cart line is a
// snapshot of the product at add time.
type Service struct {
	Cart     cartRepo.CartRepository
	Products catalogRepo.ProductRepository
}

// AddProduct puts quantity units of the product in the user's cart. Adding a
// product already in the cart merges by summing quantities.
func (s *Service) AddProduct(userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	product, err := s.Products.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	item := &models.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: product.ID,
		Name:      product.Name,
		ImageURL:  product.MainImage(),
		Price:     product.Price,
		Quantity:  quantity,
		Selected:  true,
	}
	if err := s.Cart.Add(item); err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}
	return item, nil
}

// Items returns the user's cart lines.
func (s *Service) Items(userID string) ([]models.CartItem, error) {
	return s.Cart.GetItems(userID)
}

// UpdateQuantity sets the line's quantity; values below 1 are rejected, the
// line is removed through Remove instead.
func (s *Service) UpdateQuantity(userID, cartID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	return s.Cart.UpdateQuantity(userID, cartID, quantity)
}

// SetSelected marks the line in or out of the next checkout.
func (s *Service) SetSelected(userID, cartID string, selected bool) error {
	return s.Cart.SetSelected(userID, cartID, selected)
}

// Remove deletes the given cart lines.
func (s *Service) Remove(userID string, cartIDs []string) error {
	if len(cartIDs) == 0 {
		return fmt.Errorf("no cart items given")
	}
	return s.Cart.DeleteItems(userID, cartIDs)
}

// Watch streams the cart snapshot on every change until ctx ends.
func (s *Service) Watch(ctx context.Context, userID string) (<-chan []models.CartItem, error) {
	return s.Cart.Watch(ctx, userID)
}
