package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parenthub/models"
	"parenthub/utils"

	"github.com/go-redis/redis/v8"
)

const (
	contextKeyPrefix = "assistant:"
	contextTTL       = 24 * time.Hour

	// maxContextTurns bounds the rolling window handed to the model.
	maxContextTurns = 20
)

// ContextStore keeps the rolling per-user conversation window.
type ContextStore interface {
	Get(userID string) (*models.AssistantContext, error)
	Save(userID string, ctx *models.AssistantContext) error
}

// RedisContextStore backs ContextStore with the context cache.
type RedisContextStore struct {
	Client *redis.Client
}

func NewRedisContextStore() *RedisContextStore {
	return &RedisContextStore{Client: utils.GetContextCacheClient()}
}

func contextKey(userID string) string {
	return contextKeyPrefix + userID
}

// Get fetches the user's conversation window; a missing key yields an empty one.
func (s *RedisContextStore) Get(userID string) (*models.AssistantContext, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Client.Get(ctx, contextKey(userID)).Result()
	if err == redis.Nil {
		return &models.AssistantContext{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assistant context: %w", err)
	}

	var assistantCtx models.AssistantContext
	if err := json.Unmarshal([]byte(data), &assistantCtx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assistant context: %w", err)
	}
	return &assistantCtx, nil
}

// Save stores the window, trimmed to the newest maxContextTurns turns.
func (s *RedisContextStore) Save(userID string, assistantCtx *models.AssistantContext) error {
	if len(assistantCtx.Turns) > maxContextTurns {
		assistantCtx.Turns = assistantCtx.Turns[len(assistantCtx.Turns)-maxContextTurns:]
	}

	data, err := json.Marshal(assistantCtx)
	if err != nil {
		return fmt.Errorf("failed to marshal assistant context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Client.Set(ctx, contextKey(userID), data, contextTTL).Err(); err != nil {
		return fmt.Errorf("failed to save assistant context: %w", err)
	}
	return nil
}
