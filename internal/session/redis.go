package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"rental-backoffice/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "rb:session:"

var _ Store = (*RedisStore)(nil)

// RedisStore keeps one key per session; redis expiry does the cleanup.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

// NewRedisClient connects and pings the configured server.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

func key(id string) string { return keyPrefix + id }

func (s *RedisStore) Create(ctx context.Context, adminID uint, ttl time.Duration) (string, error) {
	id := uuid.NewString()
	if err := s.Client.Set(ctx, key(id), adminID, ttl).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

func (s *RedisStore) Active(ctx context.Context, id string) (uint, error) {
	val, err := s.Client.Get(ctx, key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrInactive
	}
	if err != nil {
		return 0, fmt.Errorf("load session: %w", err)
	}
	adminID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("session %s: bad admin id %q", id, val)
	}
	return uint(adminID), nil
}

func (s *RedisStore) Revoke(ctx context.Context, id string) error {
	if err := s.Client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
