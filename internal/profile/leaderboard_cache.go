package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/titanlift/internal/rewards"
	"github.com/2beens/titanlift/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const leaderboardCacheKey = "titanlift::leaderboard"

// LeaderboardCache keeps the ranked leaderboard in redis, shared by all
// service instances.
type LeaderboardCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewLeaderboardCache(redisClient *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get returns (nil, false, nil) on a cache miss.
func (c *LeaderboardCache) Get(ctx context.Context) (_ []rewards.LeaderboardEntry, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.leaderboard.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	cached, err := c.redisClient.Get(ctx, leaderboardCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get leaderboard: %w", err)
	}

	var entries []rewards.LeaderboardEntry
	if err := json.Unmarshal(cached, &entries); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached leaderboard: %w", err)
	}

	return entries, true, nil
}

func (c *LeaderboardCache) Set(ctx context.Context, entries []rewards.LeaderboardEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.leaderboard.set")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}

	if err := c.redisClient.Set(ctx, leaderboardCacheKey, entriesJson, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set leaderboard: %w", err)
	}
	return nil
}

func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, leaderboardCacheKey).Err(); err != nil {
		return fmt.Errorf("redis del leaderboard: %w", err)
	}
	return nil
}
