package errs

import "errors"

// Sentinel errors shared across usecase layers. Dynamic messages are built
// with Newf and tied to one of these via Mark so callers can classify with
// Is while the seat-level detail survives in the message.
var (
	// Not found
	ErrShowNotFound     = errors.New("show not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBookingNotFound  = errors.New("booking not found")

	// Invalid state
	ErrCustomerInactive        = errors.New("customer account is deactivated")
	ErrSeatAlreadyBooked       = errors.New("seat already booked")
	ErrSeatTemporarilyLocked   = errors.New("seat temporarily locked")
	ErrNoValidSeats            = errors.New("no valid seats found for this show")
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")

	// Invalid input on the provisioning path
	ErrInvalidShowSpec = errors.New("invalid show specification")

	// Concurrency conflict, always retryable
	ErrSeatConflict = errors.New("one or more selected seats are no longer available, please retry")

	// Anything else
	ErrUnexpected = errors.New("unexpected booking error")
)

// Retryable reports whether the caller may safely retry the operation.
func Retryable(err error) bool {
	return Is(err, ErrSeatConflict)
}
