package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"overcooked-cart/cart-svc/internal/cart"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) CartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Session returns the blob slot holding one session's cart snapshot.
func (c *RedisCache) Session(sessionID string) cart.Store {
	return &sessionSnapshot{cache: c, key: c.CartKey(sessionID)}
}

type sessionSnapshot struct {
	cache *RedisCache
	key   string
}

func (s *sessionSnapshot) Load(ctx context.Context) ([]byte, error) {
	data, err := s.cache.Client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.key, err)
	}
	return data, nil
}

// Save rewrites the whole snapshot and refreshes its TTL.
func (s *sessionSnapshot) Save(ctx context.Context, data []byte) error {
	if err := s.cache.Client.Set(ctx, s.key, data, s.cache.TTL).Err(); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}
