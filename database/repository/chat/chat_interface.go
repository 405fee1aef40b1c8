package chatRepo

import (
	"context"

	"parenthub/models"
)

// ChatRepository persists chat messages, both consultation rooms
// ("userID_doctorID") and the per-user assistant thread.
type ChatRepository interface {
	Append(message *models.ChatMessage) error
	GetByRoom(roomID string) ([]models.ChatMessage, error)

	// Watch streams the room's messages, oldest first, on every change
	// until ctx ends.
	Watch(ctx context.Context, roomID string) (<-chan []models.ChatMessage, error)
}
