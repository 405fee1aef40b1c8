package user

import (
	"parenthub/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists issued-token sessions. One session per user: signing
// in again replaces the previous session and invalidates its token.
type SessionStore interface {
	Save(session utils.AuthSession) error
	Get(userID string) (*utils.AuthSession, error)
	Delete(userID string) error
}

// RedisSessionStore backs SessionStore with the auth cache.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{Client: utils.GetAuthCacheClient()}
}

func (s *RedisSessionStore) Save(session utils.AuthSession) error {
	return utils.SaveAuthSession(s.Client, session)
}

func (s *RedisSessionStore) Get(userID string) (*utils.AuthSession, error) {
	return utils.GetAuthSession(s.Client, userID)
}

func (s *RedisSessionStore) Delete(userID string) error {
	return utils.DeleteAuthSession(s.Client, userID)
}
