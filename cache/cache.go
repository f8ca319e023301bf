package cache

import (
	"context"
	"time"

	"github.com/adexaja/trade-analysis-ai/database"
	"github.com/adexaja/trade-analysis-ai/model"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// RateLimiterCache holds one *rate.Limiter per client IP.
var RateLimiterCache = cache.New(10*time.Minute, 20*time.Minute)

// CandleStore caches market snapshots by key. Analyses are never cached.
type CandleStore interface {
	Get(ctx context.Context, key string) (*model.MarketSnapshot, bool)
	Set(ctx context.Context, key string, snap *model.MarketSnapshot, ttl time.Duration)
}

type MemoryCandleStore struct {
	c *cache.Cache
}

func NewMemoryCandleStore() *MemoryCandleStore {
	return &MemoryCandleStore{c: cache.New(time.Minute, 5*time.Minute)}
}

func (m *MemoryCandleStore) Get(_ context.Context, key string) (*model.MarketSnapshot, bool) {
	val, found := m.c.Get(key)
	if !found {
		return nil, false
	}
	snap := val.(model.MarketSnapshot)
	return &snap, true
}

func (m *MemoryCandleStore) Set(_ context.Context, key string, snap *model.MarketSnapshot, ttl time.Duration) {
	m.c.Set(key, *snap, ttl)
}

// RedisCandleStore shares the candle cache between instances. Redis errors
// are logged and treated as misses.
type RedisCandleStore struct {
	store *database.RedisStore
}

func NewRedisCandleStore(store *database.RedisStore) *RedisCandleStore {
	return &RedisCandleStore{store: store}
}

func (r *RedisCandleStore) Get(ctx context.Context, key string) (*model.MarketSnapshot, bool) {
	var snap model.MarketSnapshot
	found, err := r.store.GetJSON(ctx, key, &snap)
	if err != nil || !found {
		return nil, false
	}
	return &snap, true
}

func (r *RedisCandleStore) Set(ctx context.Context, key string, snap *model.MarketSnapshot, ttl time.Duration) {
	if err := r.store.SetJSON(ctx, key, snap, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("candle cache write skipped")
	}
}
