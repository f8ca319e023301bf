package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisStore is a thin JSON layer over a go-redis client.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to url (redis:// or rediss://) and pings it once.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	log.Info().Str("addr", opts.Addr).Msg("connected to redis")
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, raw, expiration).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("redis SET failed")
		return err
	}
	return nil
}

// GetJSON decodes the value at key into dest. A missing key reports false
// with a nil error.
func (r *RedisStore) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("redis GET failed")
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}
