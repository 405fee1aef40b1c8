package chatRepo

import (
	"context"
	"fmt"
	"time"

	"parenthub/database"
	"parenthub/models"
	"parenthub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	coll *mongo.Collection
}

func NewMongoChatRepo() ChatRepository {
	coll := database.DB().Collection("chat_messages")
	repo := &MongoChatRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "roomId", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Append stores one message.
func (r *MongoChatRepo) Append(message *models.ChatMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp == 0 {
		message.Timestamp = time.Now().UnixMilli()
	}

	if _, err := r.coll.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

// GetByRoom retrieves a room's messages ordered by timestamp ascending.
func (r *MongoChatRepo) GetByRoom(roomID string) ([]models.ChatMessage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"roomId": roomID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat room %s: %w", roomID, err)
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	for cursor.Next(ctx) {
		var msg models.ChatMessage
		if err := cursor.Decode(&msg); err != nil {
			return nil, fmt.Errorf("failed to decode chat message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return messages, nil
}

// Watch emits the room's messages immediately and then a fresh snapshot on
// every change-stream event, until ctx is canceled.
func (r *MongoChatRepo) Watch(ctx context.Context, roomID string) (<-chan []models.ChatMessage, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"fullDocument.roomId": roomID}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open chat change stream: %w", err)
	}

	out := make(chan []models.ChatMessage, 1)
	if messages, err := r.GetByRoom(roomID); err == nil {
		out <- messages
	}

	go func() {
		defer close(out)
		defer stream.Close(context.Background())
		logger := utils.GetLogger()

		for stream.Next(ctx) {
			messages, err := r.GetByRoom(roomID)
			if err != nil {
				logger.Warn("chat watch: snapshot refresh failed", zap.Error(err))
				continue
			}
			select {
			case out <- messages:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
