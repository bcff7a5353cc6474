package bootstrap

import (
	"context"
	"log/slog"

	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/reconciler"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		reconciler.New,
	),
	fx.Invoke(
		startReconciler,
	),
)

// startReconciler pins the lease sweep to a fixed cadence. The sweep is the
// safety net behind lease expiry: even if every client vanishes, leased
// seats return to the pool within one interval past the threshold.
func startReconciler(lc fx.Lifecycle, cfg config.Config, rec *reconciler.Reconciler, logger *slog.Logger) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(cfg.Booking.SweepInterval),
		gocron.NewTask(func() {
			rec.Run(context.Background())
		}),
	)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sched.Start()
			logger.Info("seat lease reconciler started",
				"interval", cfg.Booking.SweepInterval,
				"threshold", cfg.Booking.SweepThreshold,
			)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return sched.Shutdown()
		},
	})

	return nil
}
