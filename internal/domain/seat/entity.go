package seat

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyBooked = errors.New("seat is already booked")
	ErrLeaseHeld     = errors.New("seat is temporarily locked by another holder")
	ErrInvalidSeatNo = errors.New("seat number must not be empty")
	ErrInvalidType   = errors.New("invalid seat type")
	ErrNotBooked     = errors.New("seat is not booked")
)

// Seat is one row of the seat ledger, identified by (showID, seatNo).
// All transitions assume the caller holds exclusive access to the row;
// the entity only enforces the state machine, not the serialization.
type Seat struct {
	showID      uuid.UUID
	seatNo      string
	seatType    Type
	state       State
	leaseHolder *string
	leasedAt    *time.Time
	bookedAt    *time.Time
}

func NewSeat(showID uuid.UUID, seatNo string, seatType Type) (*Seat, error) {
	if seatNo == "" {
		return nil, ErrInvalidSeatNo
	}
	if !seatType.IsValid() {
		return nil, ErrInvalidType
	}
	return &Seat{
		showID:   showID,
		seatNo:   seatNo,
		seatType: seatType,
		state:    StateFree,
	}, nil
}

func Reconstruct(
	showID uuid.UUID,
	seatNo string,
	seatType Type,
	state State,
	leaseHolder *string,
	leasedAt *time.Time,
	bookedAt *time.Time,
) *Seat {
	return &Seat{
		showID:      showID,
		seatNo:      seatNo,
		seatType:    seatType,
		state:       state,
		leaseHolder: leaseHolder,
		leasedAt:    leasedAt,
		bookedAt:    bookedAt,
	}
}

// LeaseFresh reports whether an unexpired lease exists at now.
func (s *Seat) LeaseFresh(now time.Time, ttl time.Duration) bool {
	if s.state != StateLeased || s.leasedAt == nil {
		return false
	}
	return s.leasedAt.After(now.Add(-ttl))
}

// Available is the advisory read used by the availability snapshot:
// not booked, and any lease is absent or stale.
func (s *Seat) Available(now time.Time, ttl time.Duration) bool {
	if s.state == StateBooked {
		return false
	}
	return !s.LeaseFresh(now, ttl)
}

// Lease places a best-effort soft hold. Booked seats are skipped silently;
// the lease carries no atomicity guarantee, it only signals intent to
// subsequent availability readers.
func (s *Seat) Lease(holder string, now time.Time) {
	if s.state == StateBooked {
		return
	}
	h := holder
	t := now
	s.state = StateLeased
	s.leaseHolder = &h
	s.leasedAt = &t
}

// Book transitions the seat to BOOKED. It must run under exclusive row
// access. A fresh lease held by someone other than holder rejects the
// booking; the holder's own lease does not block it.
func (s *Seat) Book(holder string, now time.Time, ttl time.Duration) error {
	if s.state == StateBooked {
		return ErrAlreadyBooked
	}
	if s.LeaseFresh(now, ttl) && s.leaseHolder != nil && *s.leaseHolder != holder {
		return ErrLeaseHeld
	}
	h := holder
	t := now
	s.state = StateBooked
	s.leaseHolder = &h
	s.leasedAt = &t
	s.bookedAt = &t
	return nil
}

// Release returns a booked seat to FREE and clears the lease fields.
func (s *Seat) Release() error {
	if s.state != StateBooked {
		return ErrNotBooked
	}
	s.state = StateFree
	s.leaseHolder = nil
	s.leasedAt = nil
	s.bookedAt = nil
	return nil
}

// ClearLease drops a soft lock without touching a booked seat. Used by the
// reconciler sweep; returns true when the seat actually changed.
func (s *Seat) ClearLease() bool {
	if s.state != StateLeased {
		return false
	}
	s.state = StateFree
	s.leaseHolder = nil
	s.leasedAt = nil
	return true
}

func (s *Seat) ShowID() uuid.UUID     { return s.showID }
func (s *Seat) SeatNo() string        { return s.seatNo }
func (s *Seat) SeatType() Type        { return s.seatType }
func (s *Seat) State() State          { return s.state }
func (s *Seat) LeaseHolder() *string  { return s.leaseHolder }
func (s *Seat) LeasedAt() *time.Time  { return s.leasedAt }
func (s *Seat) BookedAt() *time.Time  { return s.bookedAt }
