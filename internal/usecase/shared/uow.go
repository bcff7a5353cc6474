package shared

import (
	"context"
	"errors"
	"time"

	"cinema-booking/internal/domain/booking"
	"cinema-booking/internal/domain/seat"
	"cinema-booking/internal/domain/show"

	"github.com/google/uuid"
)

// ErrRetryExhausted marks a transaction that kept hitting retryable storage
// races (serialization failure, deadlock) until the bounded retry budget ran
// out. Callers surface it as a concurrency conflict.
var ErrRetryExhausted = errors.New("transaction failed after max retries")

// UnitOfWork runs fn inside one transaction against the seat and booking
// ledgers. Within retries serialization failures and deadlocks with bounded
// backoff; any other error rolls back and propagates.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Seats() SeatRepository
	Bookings() BookingRepository
	Shows() ShowRepository
}

// SeatRepository is the only write path into the seat ledger. LockBySeatNos
// is the serialization point of the whole engine: it takes exclusive,
// blocking row access (ordered by seat number so overlapping acquisitions
// cannot deadlock) and every state read that matters must happen after it.
type SeatRepository interface {
	LockBySeatNos(ctx context.Context, showID uuid.UUID, seatNos []string) ([]*seat.Seat, error)
	Save(ctx context.Context, seats []*seat.Seat) error
	InsertMap(ctx context.Context, seats []*seat.Seat) error
	// ReleaseExpiredLeases clears leases older than cutoff on non-booked
	// seats, skipping rows currently locked by an in-flight transaction.
	ReleaseExpiredLeases(ctx context.Context, cutoff time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	SaveCancellation(ctx context.Context, b *booking.Booking) error
}

type ShowRepository interface {
	Create(ctx context.Context, s *show.Show) error
}
