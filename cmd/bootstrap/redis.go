package bootstrap

import (
	"context"
	"log/slog"

	"cinema-booking/internal/infra/cache"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/usecase/commands"
	"cinema-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewSnapshotCache,
	),
)

// NewSnapshotCache wires the availability snapshot cache. Redis is purely an
// accelerator for the seat listing; without it every query hits Postgres.
func NewSnapshotCache(lc fx.Lifecycle, cfg config.Config) (queries.SnapshotCache, commands.SnapshotInvalidator) {
	if !cfg.Redis.Enabled() {
		slog.Info("Redis not configured, seat snapshot cache disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	c := cache.NewSeatSnapshotCache(rdb, cfg.Redis.SeatTTL)
	return c, c
}
