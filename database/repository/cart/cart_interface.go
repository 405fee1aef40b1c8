package cartRepo

import (
	"context"

	"parenthub/models"
)

// CartRepository defines persistence operations for per-user carts.
type CartRepository interface {
	// Add inserts the item, or when the product is already in the cart,
	// merges by summing quantities.
	Add(item *models.CartItem) error
	GetItems(userID string) ([]models.CartItem, error)
	GetSelectedItems(userID string) ([]models.CartItem, error)
	UpdateQuantity(userID, cartID string, quantity int) error
	SetSelected(userID, cartID string, selected bool) error
	DeleteItems(userID string, cartIDs []string) error

	// Watch streams the full cart snapshot on every change until ctx ends.
	Watch(ctx context.Context, userID string) (<-chan []models.CartItem, error)
}
