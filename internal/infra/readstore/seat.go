package readstore

import (
	"context"
	"time"

	"cinema-booking/internal/infra"
	"cinema-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatReadStore struct {
	pool *pgxpool.Pool
}

func NewSeatReadStore(pool *pgxpool.Pool) *SeatReadStore {
	return &SeatReadStore{pool: pool}
}

// AvailableByShow is a plain snapshot read: no locks, no guarantees beyond
// the instant the query ran.
func (r *SeatReadStore) AvailableByShow(ctx context.Context, showID uuid.UUID, cutoff time.Time) ([]queries.SeatView, error) {
	const query = `
		SELECT seat_no, seat_type, state, lease_holder, leased_at
		FROM seats
		WHERE show_id = $1
		  AND state <> 'BOOKED'
		  AND (leased_at IS NULL OR leased_at < $2)
		ORDER BY seat_no
	`
	rows, err := r.pool.Query(ctx, query, showID, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available seats", err)
	}
	defer rows.Close()

	seats := make([]queries.SeatView, 0)
	for rows.Next() {
		var v queries.SeatView
		if err := rows.Scan(&v.SeatNo, &v.SeatType, &v.State, &v.LeaseHolder, &v.LeasedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan seat view", err)
		}
		seats = append(seats, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read seat views", err)
	}
	return seats, nil
}
