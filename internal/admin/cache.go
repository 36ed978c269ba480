// AngelaMos | 2026
// cache.go

package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/litoralverde/training-api/internal/progress"
)

const rosterKey = "admin:roster"

// RosterCache keeps the aggregated users-progress roster in Redis for
// a short TTL. Every operation is best-effort: a cache outage degrades
// to recomputation, never to a failed request. It also implements
// progress.RosterInvalidator so progress writes drop stale rosters.
type RosterCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRosterCache(client *redis.Client, ttl time.Duration) *RosterCache {
	return &RosterCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RosterCache) Get(
	ctx context.Context,
) ([]progress.UserProgressSummary, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, rosterKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("roster cache read failed", "error", err)
		}
		return nil, false
	}

	var roster []progress.UserProgressSummary
	if err := json.Unmarshal(data, &roster); err != nil {
		slog.Warn("roster cache decode failed", "error", err)
		return nil, false
	}

	return roster, true
}

func (c *RosterCache) Set(
	ctx context.Context,
	roster []progress.UserProgressSummary,
) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(roster)
	if err != nil {
		slog.Warn("roster cache encode failed", "error", err)
		return
	}

	if err := c.client.Set(ctx, rosterKey, data, c.ttl).Err(); err != nil {
		slog.Warn("roster cache write failed", "error", err)
	}
}

func (c *RosterCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, rosterKey).Err(); err != nil {
		slog.Warn("roster cache invalidation failed", "error", err)
	}
}

var _ progress.RosterInvalidator = (*RosterCache)(nil)
