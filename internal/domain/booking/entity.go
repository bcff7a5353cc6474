package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoSeats          = errors.New("booking requires at least one seat")
	ErrDuplicateSeat    = errors.New("duplicate seat number in booking")
	ErrInvalidChannel   = errors.New("invalid booking channel")
	ErrCustomerRequired = errors.New("online booking requires a customer")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

const DefaultCancellationReason = "User requested cancellation"

// Booking records a committed reservation. The seat numbers are kept as an
// ordered set; persistence stores them as an association, one row per seat,
// never a delimited string.
type Booking struct {
	id                 uuid.UUID
	customerID         *uuid.UUID
	showID             uuid.UUID
	seatNos            []string
	bookingTime        time.Time
	channel            Channel
	status             Status
	cancelledAt        *time.Time
	cancelledBy        *Actor
	cancellationReason *string
}

func NewBooking(customerID *uuid.UUID, showID uuid.UUID, seatNos []string, channel Channel, now time.Time) (*Booking, error) {
	if len(seatNos) == 0 {
		return nil, ErrNoSeats
	}
	seen := make(map[string]struct{}, len(seatNos))
	for _, no := range seatNos {
		if _, dup := seen[no]; dup {
			return nil, ErrDuplicateSeat
		}
		seen[no] = struct{}{}
	}
	if !channel.IsValid() {
		return nil, ErrInvalidChannel
	}
	if channel == ChannelOnline && customerID == nil {
		return nil, ErrCustomerRequired
	}

	nos := make([]string, len(seatNos))
	copy(nos, seatNos)

	return &Booking{
		id:          uuid.New(),
		customerID:  customerID,
		showID:      showID,
		seatNos:     nos,
		bookingTime: now,
		channel:     channel,
		status:      StatusBooked,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	customerID *uuid.UUID,
	showID uuid.UUID,
	seatNos []string,
	bookingTime time.Time,
	channel Channel,
	status Status,
	cancelledAt *time.Time,
	cancelledBy *Actor,
	cancellationReason *string,
) *Booking {
	return &Booking{
		id:                 id,
		customerID:         customerID,
		showID:             showID,
		seatNos:            seatNos,
		bookingTime:        bookingTime,
		channel:            channel,
		status:             status,
		cancelledAt:        cancelledAt,
		cancelledBy:        cancelledBy,
		cancellationReason: cancellationReason,
	}
}

// Cancel is the one-way BOOKED -> CANCELLED transition. Repeating it always
// errors; cancellation is reject-idempotent, never silently absorbed.
// An unknown actor falls back to CUSTOMER when the booking carries a
// customer reference, SYSTEM otherwise.
func (b *Booking) Cancel(actor Actor, reason string, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if actor == ActorUnknown {
		if b.customerID != nil {
			actor = ActorCustomer
		} else {
			actor = ActorSystem
		}
	}
	if reason == "" {
		reason = DefaultCancellationReason
	}

	b.status = StatusCancelled
	b.cancelledAt = &now
	b.cancelledBy = &actor
	b.cancellationReason = &reason
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusBooked
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) CustomerID() *uuid.UUID      { return b.customerID }
func (b *Booking) ShowID() uuid.UUID           { return b.showID }
func (b *Booking) BookingTime() time.Time      { return b.bookingTime }
func (b *Booking) Channel() Channel            { return b.channel }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) CancelledAt() *time.Time     { return b.cancelledAt }
func (b *Booking) CancelledBy() *Actor         { return b.cancelledBy }
func (b *Booking) CancellationReason() *string { return b.cancellationReason }

// SeatNos returns the ordered seat set as a defensive copy.
func (b *Booking) SeatNos() []string {
	nos := make([]string, len(b.seatNos))
	copy(nos, b.seatNos)
	return nos
}
