package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "fmn:revoked:"

// RevocationList remembers logged out token ids until the tokens expire.
type RevocationList interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// NewRedisClient parses url and pings the server. Empty url means redis is not configured.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

type RedisList struct {
	client *redis.Client
}

func NewRedisList(client *redis.Client) *RedisList {
	return &RedisList{client: client}
}

func (rl *RedisList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	return rl.client.Set(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Err()
}

func (rl *RedisList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	_, err := rl.client.Get(ctx, revokedTokenKeyPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MemoryList is used when no redis is configured. Entries live only as long as the process.
type MemoryList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryList() *MemoryList {
	return &MemoryList{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (ml *MemoryList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	ml.mu.Lock()
	defer ml.mu.Unlock()
	now := ml.now()
	for k, exp := range ml.revoked {
		if !exp.After(now) {
			delete(ml.revoked, k)
		}
	}
	ml.revoked[jti] = now.Add(ttl)
	return nil
}

func (ml *MemoryList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	exp, ok := ml.revoked[jti]
	if !ok {
		return false, nil
	}
	return exp.After(ml.now()), nil
}
