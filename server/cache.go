package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/nigeshu/YoutubeSangam/model"
)

// SnapshotCacheTTL bounds how stale a cached channel snapshot may get before
// a fetch goes back upstream.
const SnapshotCacheTTL = 15 * time.Minute

// SnapshotCache is a Redis cache-aside layer for channel snapshots, keyed by
// the resolved channel identifier. It saves upstream quota when the same
// channel is re-loaded shortly after a fetch.
type SnapshotCache struct {
	rdb *redis.Client
}

// NewSnapshotCache creates a SnapshotCache. If redisURL is empty or the
// connection fails, caching is disabled and all operations become no-ops.
func NewSnapshotCache(redisURL string) *SnapshotCache {
	if redisURL == "" {
		log.Info().Msg("Redis not configured, snapshot caching disabled")
		return &SnapshotCache{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid Redis URL, snapshot caching disabled")
		return &SnapshotCache{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed, snapshot caching disabled")
		return &SnapshotCache{}
	}

	log.Info().Msg("Redis connected, snapshot caching enabled")
	return &SnapshotCache{rdb: rdb}
}

// Enabled reports whether a Redis backend is connected.
func (c *SnapshotCache) Enabled() bool {
	return c.rdb != nil
}

func snapshotKey(identifier string) string {
	return fmt.Sprintf("snapshot:%s", identifier)
}

// Get retrieves a cached snapshot. Returns nil on a miss or when caching is
// disabled; a corrupt entry counts as a miss.
func (c *SnapshotCache) Get(ctx context.Context, identifier string) *model.ChannelSnapshot {
	if c.rdb == nil {
		return nil
	}

	data, err := c.rdb.Get(ctx, snapshotKey(identifier)).Bytes()
	if err == redis.Nil {
		Metrics.CacheMisses.Inc()
		return nil
	}
	if err != nil {
		log.Warn().Err(err).Str("identifier", identifier).Msg("Snapshot cache read failed")
		Metrics.CacheMisses.Inc()
		return nil
	}

	var snapshot model.ChannelSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Warn().Err(err).Str("identifier", identifier).Msg("Corrupt snapshot cache entry")
		Metrics.CacheMisses.Inc()
		return nil
	}

	Metrics.CacheHits.Inc()
	return &snapshot
}

// Set stores a snapshot with the cache TTL. Failures are logged, never
// surfaced; the cache is an optimization, not a source of truth.
func (c *SnapshotCache) Set(ctx context.Context, identifier string, snapshot *model.ChannelSnapshot) {
	if c.rdb == nil {
		return
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		log.Warn().Err(err).Str("identifier", identifier).Msg("Failed to marshal snapshot for cache")
		return
	}

	if err := c.rdb.Set(ctx, snapshotKey(identifier), data, SnapshotCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("identifier", identifier).Msg("Snapshot cache write failed")
	}
}
