package account

import (
	"context"
	"sync"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

// TokenStorage persists small string values, in practice the bearer token of a shopper.
type TokenStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// RedisStorage keeps tokens in redis so logins survive a storefront restart.
type RedisStorage struct {
	rds     *redis.Redis
	seconds int
}

func NewRedisStorage(rds *redis.Redis, seconds int) *RedisStorage {
	return &RedisStorage{rds: rds, seconds: seconds}
}

func (r *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	return r.rds.GetCtx(ctx, key)
}

func (r *RedisStorage) Set(ctx context.Context, key, value string) error {
	if r.seconds <= 0 {
		return r.rds.SetCtx(ctx, key, value)
	}
	return r.rds.SetexCtx(ctx, key, value, r.seconds)
}

func (r *RedisStorage) Del(ctx context.Context, key string) error {
	_, err := r.rds.DelCtx(ctx, key)
	return err
}
