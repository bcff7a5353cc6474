// Package reconciler runs the periodic sweep that recovers abandoned seat
// leases. It is driven purely by the schedule, never by request traffic.
package reconciler

import (
	"context"
	"log/slog"

	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/usecase/shared"
)

type Reconciler struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.BookingConfig
}

func New(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig) *Reconciler {
	return &Reconciler{
		uow:   uow,
		clock: clk,
		cfg:   cfg,
	}
}

// Sweep clears every lease older than the sweep threshold on non-booked
// seats. It goes through the same unit of work and row-lock discipline as
// the coordinator, so it can never lose an in-flight booking's write; a
// booked seat is never touched. Idempotent.
func (r *Reconciler) Sweep(ctx context.Context) (int64, error) {
	cutoff := r.clock.Now().Add(-r.cfg.SweepThreshold)

	var released int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Seats().ReleaseExpiredLeases(ctx, cutoff)
		if err != nil {
			return err
		}
		released = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return released, nil
}

// Run is the scheduler entry point; it only logs, the schedule keeps going
// regardless of individual sweep failures.
func (r *Reconciler) Run(ctx context.Context) {
	released, err := r.Sweep(ctx)
	if err != nil {
		slog.Error("seat lease sweep failed", "error", err.Error())
		return
	}
	if released > 0 {
		slog.Info("auto-released expired seat leases", "count", released)
	}
}
