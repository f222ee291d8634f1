package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// TTL is the expiry applied by Set and Touch.
func (s *CacheService) TTL() time.Duration {
	return s.ttl
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Get decodes the JSON value at key into dest. A missing key reports false
// without error.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Touch resets the expiry of the given keys.
func (s *CacheService) Touch(ctx context.Context, keys ...string) error {
	pipe := s.client.TxPipeline()
	for _, key := range keys {
		pipe.Expire(ctx, key, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Hash operations

// HashSetFloats writes fields into the hash at key and refreshes its expiry.
// With onlyMissing set, existing fields are left untouched.
func (s *CacheService) HashSetFloats(ctx context.Context, key string, fields map[string]float64, onlyMissing bool) error {
	if len(fields) == 0 {
		return nil
	}
	pipe := s.client.TxPipeline()
	for field, v := range fields {
		value := strconv.FormatFloat(v, 'f', -1, 64)
		if onlyMissing {
			pipe.HSetNX(ctx, key, field, value)
		} else {
			pipe.HSet(ctx, key, field, value)
		}
	}
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write hash %s: %w", key, err)
	}
	return nil
}

// HashGetFloats reads every field of the hash at key. Fields that do not
// parse as numbers are dropped.
func (s *CacheService) HashGetFloats(ctx context.Context, key string) (map[string]float64, error) {
	raw, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read hash %s: %w", key, err)
	}
	out := make(map[string]float64, len(raw))
	for field, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		out[field] = f
	}
	return out, nil
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
