// Package cache keeps a short-TTL availability snapshot in Redis. The
// snapshot is advisory by contract, so serving a slightly stale one is
// equivalent to an uncached read a concurrent booking just invalidated.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cinema-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "seats:avail:"

type SeatSnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSeatSnapshotCache(rdb *redis.Client, ttl time.Duration) *SeatSnapshotCache {
	return &SeatSnapshotCache{rdb: rdb, ttl: ttl}
}

func (c *SeatSnapshotCache) Get(ctx context.Context, showID uuid.UUID) ([]queries.SeatView, bool) {
	raw, err := c.rdb.Get(ctx, keyPrefix+showID.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("seat cache read failed", "show_id", showID, "error", err.Error())
		}
		return nil, false
	}
	var seats []queries.SeatView
	if err := json.Unmarshal(raw, &seats); err != nil {
		return nil, false
	}
	return seats, true
}

func (c *SeatSnapshotCache) Set(ctx context.Context, showID uuid.UUID, seats []queries.SeatView) {
	raw, err := json.Marshal(seats)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, keyPrefix+showID.String(), raw, c.ttl).Err(); err != nil {
		slog.Warn("seat cache write failed", "show_id", showID, "error", err.Error())
	}
}

func (c *SeatSnapshotCache) Invalidate(ctx context.Context, showID uuid.UUID) {
	if err := c.rdb.Del(ctx, keyPrefix+showID.String()).Err(); err != nil {
		slog.Warn("seat cache invalidation failed", "show_id", showID, "error", err.Error())
	}
}
