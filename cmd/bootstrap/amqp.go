package bootstrap

import (
	"context"
	"log/slog"

	"cinema-booking/internal/infra/broadcast"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewSeatBroadcaster,
	),
)

// NewSeatBroadcaster connects to the broker at startup. Broadcasting is a
// best-effort side channel, so a broker that is down or unconfigured
// degrades to a nil broadcaster instead of failing the whole service.
func NewSeatBroadcaster(lc fx.Lifecycle, cfg config.Config) commands.SeatBroadcaster {
	if cfg.AMQP.URL == "" {
		return nil
	}

	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		slog.Warn("AMQP broker unreachable, seat broadcasting disabled", "error", err.Error())
		return nil
	}

	b, err := broadcast.NewAMQPBroadcaster(conn, cfg.AMQP)
	if err != nil {
		slog.Warn("failed to set up seat broadcast queue, broadcasting disabled", "error", err.Error())
		_ = conn.Close()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			b.Close()
			return conn.Close()
		},
	})

	return b
}
