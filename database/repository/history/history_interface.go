package historyRepo

import (
	"context"

	"parenthub/models"
)

// HistoryRepository persists the immutable transaction history.
type HistoryRepository interface {
	Create(transaction *models.HistoryTransaction) error
	GetByID(id string) (*models.HistoryTransaction, error)
	GetByUser(userID string) ([]models.HistoryTransaction, error)

	// SetReviewed flips the reviewed flag to true; it only matches records
	// that have not been reviewed yet, so the flip happens at most once.
	SetReviewed(id string) error

	// Watch streams the user's history snapshot on every change until ctx ends.
	Watch(ctx context.Context, userID string) (<-chan []models.HistoryTransaction, error)
}
