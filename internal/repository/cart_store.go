package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gadgetpasal/backend/internal/model"
)

// DefaultCartTTL is how long an untouched cart survives in Redis.
const DefaultCartTTL = 30 * 24 * time.Hour

// CartKey is the Redis key holding a user's cart lines.
func CartKey(userID uuid.UUID) string {
	return "cart:" + userID.String()
}

// MemoryCartStore keeps carts in process memory.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID][]model.CartItem
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[uuid.UUID][]model.CartItem)}
}

func (s *MemoryCartStore) Get(_ context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.CartItem{}, s.carts[userID]...), nil
}

func (s *MemoryCartStore) Save(_ context.Context, userID uuid.UUID, items []model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		delete(s.carts, userID)
		return nil
	}
	s.carts[userID] = append([]model.CartItem{}, items...)
	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}

// RedisCartStore keeps each cart as one JSON document under CartKey.
type RedisCartStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisCartStore(client redis.UniversalClient, ttl time.Duration) *RedisCartStore {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) Get(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	raw, err := s.client.Get(ctx, CartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []model.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	items := []model.CartItem{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

func (s *RedisCartStore) Save(ctx context.Context, userID uuid.UUID, items []model.CartItem) error {
	if len(items) == 0 {
		return s.Delete(ctx, userID)
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, CartKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, CartKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
