package readstore

import (
	"context"
	"errors"

	"cinema-booking/internal/infra"
	"cinema-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.customer_id, c.name, c.email,
		       b.show_id, s.movie_title, s.hall_no, s.start_time,
		       b.booking_time, b.channel, b.status,
		       b.cancelled_at, b.cancelled_by, b.cancellation_reason
		FROM bookings b
		JOIN shows s ON s.id = b.show_id
		LEFT JOIN customers c ON c.id = b.customer_id
		WHERE b.id = $1
	`
	var v queries.BookingView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.CustomerID, &v.CustomerName, &v.CustomerEmail,
		&v.ShowID, &v.MovieTitle, &v.HallNo, &v.StartTime,
		&v.BookingTime, &v.Channel, &v.Status,
		&v.CancelledAt, &v.CancelledBy, &v.CancellationReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	seatNos, err := r.seatNos(ctx, id)
	if err != nil {
		return nil, err
	}
	v.SeatNos = seatNos
	return &v, nil
}

func (r *BookingReadStore) seatNos(ctx context.Context, bookingID uuid.UUID) ([]string, error) {
	const query = `
		SELECT seat_no FROM booking_seats
		WHERE booking_id = $1
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking seats", err)
	}
	defer rows.Close()

	var seatNos []string
	for rows.Next() {
		var no string
		if err := rows.Scan(&no); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking seat", err)
		}
		seatNos = append(seatNos, no)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking seats", err)
	}
	return seatNos, nil
}
