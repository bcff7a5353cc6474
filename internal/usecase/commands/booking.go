package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cinema-booking/internal/domain/booking"
	"cinema-booking/internal/domain/seat"
	"cinema-booking/internal/infra"
	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/queries"
	"cinema-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	sourceBooking   = "BookingService"
	sourceEmail     = "EmailService"
	sourceBroadcast = "SeatBroadcastService"
	sourcePrint     = "PrintService"

	effectTimeout = 10 * time.Second
	maxTraceLines = 40
)

type BookingCommands interface {
	// SoftLock stamps a best-effort lease on the non-booked seats of the
	// request. It signals intent to availability readers only; it is not
	// part of the booking atomicity guarantee.
	SoftLock(ctx context.Context, showID uuid.UUID, seatNos []string, holder string) error

	// BookSeats validates show, customer and seats, takes exclusive access
	// to exactly the targeted seat rows, transitions them to BOOKED and
	// commits the booking record in the same transaction. For concurrent
	// calls with intersecting seat sets at most one succeeds.
	BookSeats(ctx context.Context, customerID *uuid.UUID, showID uuid.UUID, seatNos []string, channel booking.Channel) (*queries.BookingView, error)

	// CancelBooking performs the terminal BOOKED -> CANCELLED transition and
	// releases every referenced seat in the same transaction. Repeated
	// cancellation is rejected, never absorbed.
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor booking.Actor, reason string) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	customers CustomerDirectory
	catalog   ShowCatalog
	notifier  Notifier
	broadcast SeatBroadcaster
	printer   TicketPrinter
	sink      ErrorSink
	snapshots SnapshotInvalidator
	clock     clock.Clock
	cfg       config.BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	customers CustomerDirectory,
	catalog ShowCatalog,
	notifier Notifier,
	broadcast SeatBroadcaster,
	printer TicketPrinter,
	sink ErrorSink,
	snapshots SnapshotInvalidator,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		customers: customers,
		catalog:   catalog,
		notifier:  notifier,
		broadcast: broadcast,
		printer:   printer,
		sink:      sink,
		snapshots: snapshots,
		clock:     clk,
		cfg:       cfg,
	}
}

func (c *bookingCommandsImpl) SoftLock(ctx context.Context, showID uuid.UUID, seatNos []string, holder string) error {
	if len(seatNos) == 0 {
		return errs.Mark(errs.New("no seats requested"), errs.ErrNoValidSeats)
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		seats, err := tx.Seats().LockBySeatNos(ctx, showID, seatNos)
		if err != nil {
			return err
		}
		if len(seats) == 0 {
			return errs.Mark(errs.New("no seats matched the request"), errs.ErrNoValidSeats)
		}

		now := c.clock.Now()
		for _, st := range seats {
			st.Lease(holder, now)
		}
		return tx.Seats().Save(ctx, seats)
	})
	if err != nil {
		c.recordFailure(ctx, sourceBooking, err, nil)
		return err
	}
	return nil
}

func (c *bookingCommandsImpl) BookSeats(
	ctx context.Context,
	customerID *uuid.UUID,
	showID uuid.UUID,
	seatNos []string,
	channel booking.Channel,
) (*queries.BookingView, error) {
	view, err := c.bookSeats(ctx, customerID, showID, seatNos, channel)
	if err != nil {
		c.recordFailure(ctx, sourceBooking, err, customerID)
		return nil, err
	}
	return view, nil
}

func (c *bookingCommandsImpl) bookSeats(
	ctx context.Context,
	customerID *uuid.UUID,
	showID uuid.UUID,
	seatNos []string,
	channel booking.Channel,
) (*queries.BookingView, error) {
	if len(seatNos) == 0 {
		return nil, errs.Mark(errs.New("no seats requested"), errs.ErrNoValidSeats)
	}
	if uniqueCount(seatNos) != len(seatNos) {
		return nil, errs.Mark(errs.New("duplicate seat numbers in request"), errs.ErrNoValidSeats)
	}
	if !channel.IsValid() {
		return nil, errs.Mark(errs.Newf("unknown booking channel %q", channel), errs.ErrUnexpected)
	}

	showSnap, err := c.catalog.FindByID(ctx, showID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("show not found with ID %s", showID), errs.ErrShowNotFound)
		}
		return nil, errs.Mark(err, errs.ErrUnexpected)
	}

	var customerSnap *shared.CustomerSnapshot
	if channel == booking.ChannelOnline {
		if customerID == nil {
			return nil, errs.Mark(errs.New("online booking requires a customer ID"), errs.ErrCustomerNotFound)
		}
		customerSnap, err = c.customers.FindByID(ctx, *customerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(errs.Newf("customer not found with ID %s", *customerID), errs.ErrCustomerNotFound)
			}
			return nil, errs.Mark(err, errs.ErrUnexpected)
		}
		if !customerSnap.Active {
			return nil, errs.Mark(errs.New("customer account is deactivated, please contact support"), errs.ErrCustomerInactive)
		}
	}

	holder := bookingHolder(customerID, channel)

	var (
		booked  *booking.Booking
		updates []SeatUpdate
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Sole serialization point: every seat-state read below happens
		// under the row locks and the locks are held until commit.
		seats, err := tx.Seats().LockBySeatNos(ctx, showID, seatNos)
		if err != nil {
			return err
		}
		if len(seats) == 0 {
			return errs.Mark(errs.New("no valid seats found for this show"), errs.ErrNoValidSeats)
		}
		if len(seats) != len(seatNos) {
			return errs.Mark(errs.New("one or more seat numbers do not belong to this show"), errs.ErrNoValidSeats)
		}

		now := c.clock.Now()
		for _, st := range seats {
			if err := st.Book(holder, now, c.cfg.LeaseTTL); err != nil {
				switch {
				case errs.Is(err, seat.ErrAlreadyBooked):
					return errs.Mark(errs.Newf("seat %s is already booked", st.SeatNo()), errs.ErrSeatAlreadyBooked)
				case errs.Is(err, seat.ErrLeaseHeld):
					return errs.Mark(errs.Newf("seat %s is temporarily locked, please refresh", st.SeatNo()), errs.ErrSeatTemporarilyLocked)
				default:
					return errs.Mark(err, errs.ErrUnexpected)
				}
			}
		}
		if err := tx.Seats().Save(ctx, seats); err != nil {
			return err
		}

		b, err := booking.NewBooking(customerID, showID, seatNos, channel, now)
		if err != nil {
			return errs.Mark(err, errs.ErrUnexpected)
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}

		booked = b
		updates = seatUpdates(seats)
		return nil
	})
	if err != nil {
		return nil, classifyStorageErr(err)
	}

	view := buildBookingView(booked, showSnap, customerSnap)
	go c.dispatchBookingEffects(context.WithoutCancel(ctx), view, updates)
	return view, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor booking.Actor, reason string) error {
	var (
		cancelled *booking.Booking
		updates   []SeatUpdate
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("booking not found with ID %s", bookingID), errs.ErrBookingNotFound)
			}
			return err
		}

		if err := b.Cancel(actor, reason, c.clock.Now()); err != nil {
			if errs.Is(err, booking.ErrAlreadyCancelled) {
				return errs.Mark(errs.Newf("booking %s is already cancelled", bookingID), errs.ErrBookingAlreadyCancelled)
			}
			return errs.Mark(err, errs.ErrUnexpected)
		}
		if err := tx.Bookings().SaveCancellation(ctx, b); err != nil {
			return err
		}

		seats, err := tx.Seats().LockBySeatNos(ctx, b.ShowID(), b.SeatNos())
		if err != nil {
			return err
		}
		for _, st := range seats {
			if err := st.Release(); err != nil {
				// A free seat on a booked booking means something else
				// already released it; releasing again is a no-op.
				slog.Warn("seat was not booked at cancellation",
					"booking_id", bookingID, "seat_no", st.SeatNo())
			}
		}
		if err := tx.Seats().Save(ctx, seats); err != nil {
			return err
		}

		cancelled = b
		updates = seatUpdates(seats)
		return nil
	})
	if err != nil {
		err = classifyStorageErr(err)
		c.recordFailure(ctx, sourceBooking, err, actorCustomer(cancelled))
		return err
	}

	go c.dispatchCancelEffects(context.WithoutCancel(ctx), cancelled, updates)
	return nil
}

// dispatchBookingEffects runs the post-commit side effects detached from the
// transaction's lock scope. Failures go to the error sink only; the booking
// is already committed and must not be rolled back or failed.
func (c *bookingCommandsImpl) dispatchBookingEffects(ctx context.Context, view *queries.BookingView, updates []SeatUpdate) {
	ctx, cancel := context.WithTimeout(ctx, effectTimeout)
	defer cancel()

	if c.snapshots != nil {
		c.snapshots.Invalidate(ctx, view.ShowID)
	}

	if c.notifier != nil {
		if view.CustomerEmail != nil && *view.CustomerEmail != "" {
			if err := c.notifier.Notify(ctx, view); err != nil {
				c.recordFailure(ctx, sourceEmail, err, view.CustomerID)
			}
		} else {
			slog.Info("skipped confirmation email: no customer email on booking", "booking_id", view.ID)
		}
	}

	if c.broadcast != nil {
		if err := c.broadcast.Publish(ctx, view.ShowID, updates); err != nil {
			c.recordFailure(ctx, sourceBroadcast, err, view.CustomerID)
		} else {
			slog.Debug("seat update broadcast sent", "show_id", view.ShowID)
		}
	}

	if c.printer != nil && view.Channel == booking.ChannelBoxOffice.String() {
		if err := c.printer.Print(ctx, view); err != nil {
			c.recordFailure(ctx, sourcePrint, err, view.CustomerID)
		}
	}
}

func (c *bookingCommandsImpl) dispatchCancelEffects(ctx context.Context, b *booking.Booking, updates []SeatUpdate) {
	ctx, cancel := context.WithTimeout(ctx, effectTimeout)
	defer cancel()

	if c.snapshots != nil {
		c.snapshots.Invalidate(ctx, b.ShowID())
	}
	if c.broadcast != nil {
		if err := c.broadcast.Publish(ctx, b.ShowID(), updates); err != nil {
			c.recordFailure(ctx, sourceBroadcast, err, b.CustomerID())
		} else {
			slog.Debug("seat unlock broadcast sent", "booking_id", b.ID())
		}
	}
}

// recordFailure writes the failure to the durable error sink with component
// tag and customer context before the error is returned to the caller.
func (c *bookingCommandsImpl) recordFailure(ctx context.Context, source string, err error, customerID *uuid.UUID) {
	if c.sink == nil {
		return
	}
	tag := source
	if customerID != nil {
		tag = fmt.Sprintf("%s (Customer ID: %s)", source, customerID)
	}
	trace := errs.ExtractStackLines(err, maxTraceLines)
	c.sink.Record(context.WithoutCancel(ctx), tag, err.Error(), trace, c.clock.Now())
}

// classifyStorageErr maps storage-level race signals to the retryable
// conflict error. A uniqueness violation here means two transactions raced
// past the exclusive-access step; it must surface as a conflict, never as
// success.
func classifyStorageErr(err error) error {
	if infra.IsKind(err, infra.KindConflict) || errs.Is(err, shared.ErrRetryExhausted) {
		return errs.Mark(err, errs.ErrSeatConflict)
	}
	return err
}

// bookingHolder is the actor identity a booking presents against existing
// leases: the customer for online bookings, the channel for walk-ins. A
// customer's own soft lock never blocks their booking.
func bookingHolder(customerID *uuid.UUID, channel booking.Channel) string {
	if channel == booking.ChannelOnline && customerID != nil {
		return customerID.String()
	}
	return channel.String()
}

func seatUpdates(seats []*seat.Seat) []SeatUpdate {
	updates := make([]SeatUpdate, len(seats))
	for i, st := range seats {
		updates[i] = SeatUpdate{SeatNo: st.SeatNo(), State: st.State().String()}
	}
	return updates
}

func uniqueCount(seatNos []string) int {
	seen := make(map[string]struct{}, len(seatNos))
	for _, no := range seatNos {
		seen[no] = struct{}{}
	}
	return len(seen)
}

func actorCustomer(b *booking.Booking) *uuid.UUID {
	if b == nil {
		return nil
	}
	return b.CustomerID()
}

func buildBookingView(b *booking.Booking, s *shared.ShowSnapshot, cust *shared.CustomerSnapshot) *queries.BookingView {
	view := &queries.BookingView{
		ID:          b.ID(),
		CustomerID:  b.CustomerID(),
		ShowID:      b.ShowID(),
		MovieTitle:  s.MovieTitle,
		HallNo:      s.HallNo,
		StartTime:   s.StartTime,
		SeatNos:     b.SeatNos(),
		BookingTime: b.BookingTime(),
		Channel:     b.Channel().String(),
		Status:      b.Status().String(),
	}
	if cust != nil {
		name := cust.Name
		email := cust.Email
		view.CustomerName = &name
		view.CustomerEmail = &email
	}
	return view
}
