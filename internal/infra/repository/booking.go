package repository

import (
	"context"
	"errors"
	"time"

	"cinema-booking/internal/domain/booking"
	"cinema-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create persists the booking and its ordered seat associations. A unique
// violation on the active-seat index means another transaction raced past
// the row locks; it is reported as a conflict, never swallowed.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const insertBooking = `
		INSERT INTO bookings (id, customer_id, show_id, booking_time, channel, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	const insertSeat = `
		INSERT INTO booking_seats (booking_id, show_id, seat_no, position, active)
		VALUES ($1, $2, $3, $4, true)
	`

	batch := &pgx.Batch{}
	batch.Queue(insertBooking,
		b.ID(), b.CustomerID(), b.ShowID(),
		b.BookingTime(), b.Channel().String(), b.Status().String(),
	)
	for i, no := range b.SeatNos() {
		batch.Queue(insertSeat, b.ID(), b.ShowID(), no, i)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("seat already held by an active booking", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// FindByIDForUpdate locks the booking row for the cancellation transition
// and loads its seat set in booking order.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, customer_id, show_id, booking_time, channel, status,
		       cancelled_at, cancelled_by, cancellation_reason
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`
	var (
		bookingID          uuid.UUID
		customerID         *uuid.UUID
		showID             uuid.UUID
		bookingTime        time.Time
		channel            string
		status             string
		cancelledAt        *time.Time
		cancelledBy        *string
		cancellationReason *string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bookingID, &customerID, &showID, &bookingTime, &channel, &status,
		&cancelledAt, &cancelledBy, &cancellationReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	seatNos, err := r.seatNosByBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	var actor *booking.Actor
	if cancelledBy != nil {
		a := booking.Actor(*cancelledBy)
		actor = &a
	}

	return booking.Reconstruct(
		bookingID, customerID, showID, seatNos,
		bookingTime, booking.Channel(channel), booking.Status(status),
		cancelledAt, actor, cancellationReason,
	), nil
}

func (r *BookingRepository) SaveCancellation(ctx context.Context, b *booking.Booking) error {
	const updateBooking = `
		UPDATE bookings
		SET status = $2, cancelled_at = $3, cancelled_by = $4, cancellation_reason = $5
		WHERE id = $1
	`
	const releaseSeats = `
		UPDATE booking_seats SET active = false WHERE booking_id = $1
	`
	var cancelledBy *string
	if b.CancelledBy() != nil {
		s := b.CancelledBy().String()
		cancelledBy = &s
	}

	batch := &pgx.Batch{}
	batch.Queue(updateBooking,
		b.ID(), b.Status().String(), b.CancelledAt(), cancelledBy, b.CancellationReason(),
	)
	batch.Queue(releaseSeats, b.ID())

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr("failed to save cancellation", err)
	}
	return nil
}

func (r *BookingRepository) seatNosByBooking(ctx context.Context, bookingID uuid.UUID) ([]string, error) {
	const query = `
		SELECT seat_no FROM booking_seats
		WHERE booking_id = $1
		ORDER BY position
	`
	rows, err := r.db.Query(ctx, query, bookingID)
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
