package queries

import (
	"context"
	"log/slog"
	"time"

	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/config"

	"github.com/google/uuid"
)

type SeatReadStore interface {
	// AvailableByShow returns seats that are not booked and whose lease, if
	// any, is older than cutoff.
	AvailableByShow(ctx context.Context, showID uuid.UUID, cutoff time.Time) ([]SeatView, error)
}

// SnapshotCache is an optional short-TTL cache in front of the availability
// snapshot. The snapshot is advisory by contract, so a stale hit is no worse
// than an uncached read that a concurrent booking invalidates.
type SnapshotCache interface {
	Get(ctx context.Context, showID uuid.UUID) ([]SeatView, bool)
	Set(ctx context.Context, showID uuid.UUID, seats []SeatView)
}

type SeatQueries interface {
	AvailableSeats(ctx context.Context, showID uuid.UUID) ([]SeatView, error)
}

type seatQueriesImpl struct {
	store SeatReadStore
	cache SnapshotCache
	clock clock.Clock
	cfg   config.BookingConfig
}

func NewSeatQueries(store SeatReadStore, cache SnapshotCache, clk clock.Clock, cfg config.BookingConfig) SeatQueries {
	return &seatQueriesImpl{
		store: store,
		cache: cache,
		clock: clk,
		cfg:   cfg,
	}
}

// AvailableSeats is a non-blocking advisory snapshot. Callers must
// re-validate through BookSeats; a seat reported here may be gone by the
// time they act on it.
func (q *seatQueriesImpl) AvailableSeats(ctx context.Context, showID uuid.UUID) ([]SeatView, error) {
	if q.cache != nil {
		if seats, ok := q.cache.Get(ctx, showID); ok {
			return seats, nil
		}
	}

	cutoff := q.clock.Now().Add(-q.cfg.LeaseTTL)
	seats, err := q.store.AvailableByShow(ctx, showID, cutoff)
	if err != nil {
		return nil, err
	}

	if q.cache != nil {
		q.cache.Set(ctx, showID, seats)
		slog.Debug("availability snapshot cached", "show_id", showID, "seats", len(seats))
	}
	return seats, nil
}
