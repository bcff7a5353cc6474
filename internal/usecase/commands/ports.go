package commands

import (
	"context"
	"time"

	"cinema-booking/internal/usecase/queries"
	"cinema-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Collaborator contracts consumed by the coordinator. Everything here is
// outside the core transaction: lookups run before the seat rows are locked,
// dispatchers run detached after commit.

type CustomerDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error)
}

type ShowCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.ShowSnapshot, error)
}

// Notifier delivers the booking confirmation. Fire-and-forget: a failure is
// recorded to the error sink and never reaches the booking's error path.
type Notifier interface {
	Notify(ctx context.Context, b *queries.BookingView) error
}

type SeatUpdate struct {
	SeatNo string `json:"seat_no"`
	State  string `json:"state"`
}

type SeatBroadcaster interface {
	Publish(ctx context.Context, showID uuid.UUID, seats []SeatUpdate) error
}

type TicketPrinter interface {
	Print(ctx context.Context, b *queries.BookingView) error
}

// ErrorSink records failures durably. It deliberately returns nothing:
// by contract it may never throw back into the caller's control flow.
type ErrorSink interface {
	Record(ctx context.Context, source, message string, trace []string, at time.Time)
}

// SnapshotInvalidator drops the cached availability snapshot for a show.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context, showID uuid.UUID)
}
