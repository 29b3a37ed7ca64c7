package kvstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/agendafacil/booking-platform/internal/domain/providers"
	redisclient "github.com/agendafacil/booking-platform/internal/infrastructure/clients/redis"
)

const scanBatchSize = 200

// RedisStore implements the KVStore interface on Redis. Prefix scans use
// SCAN with a MATCH pattern followed by MGET, so they see every live key
// without blocking the server the way KEYS would.
type RedisStore struct {
	client *redisclient.Client
}

// NewRedisStore creates a new Redis-backed store
func NewRedisStore(client *redisclient.Client) providers.KVStore {
	return &RedisStore{
		client: client,
	}
}

// Get returns the value stored under key
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Client().Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, providers.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key with no expiration
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Client().Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes the value under key
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// GetByPrefix returns every value whose key starts with prefix
func (s *RedisStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	pattern := escapeMatchPattern(prefix) + "*"

	keys := make([]string, 0)
	iter := s.client.Client().Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan prefix %q: %w", prefix, err)
	}

	values := make([][]byte, 0, len(keys))
	for start := 0; start < len(keys); start += scanBatchSize {
		end := start + scanBatchSize
		if end > len(keys) {
			end = len(keys)
		}

		results, err := s.client.Client().MGet(ctx, keys[start:end]...).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch keys for prefix %q: %w", prefix, err)
		}
		for _, result := range results {
			// Keys deleted between SCAN and MGET come back nil.
			if result == nil {
				continue
			}
			if str, ok := result.(string); ok {
				values = append(values, []byte(str))
			}
		}
	}
	return values, nil
}

// escapeMatchPattern escapes glob metacharacters so the prefix is matched
// literally.
func escapeMatchPattern(prefix string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`*`, `\*`,
		`?`, `\?`,
		`[`, `\[`,
		`]`, `\]`,
	)
	return replacer.Replace(prefix)
}
