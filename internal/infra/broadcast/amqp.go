// Package broadcast publishes seat-change events so connected seat maps can
// refresh. Publishing is best-effort: callers log failures and move on.
package broadcast

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/commands"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type seatUpdateEvent struct {
	ShowID uuid.UUID             `json:"show_id"`
	Seats  []commands.SeatUpdate `json:"seats"`
	SentAt time.Time             `json:"sent_at"`
}

// AMQPBroadcaster publishes to a durable queue on the default exchange.
// Channels are not safe for concurrent use, so publishes serialize on a
// mutex; the booking path never waits on this because dispatch is detached.
type AMQPBroadcaster struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
	cfg  config.AMQPConfig
}

func NewAMQPBroadcaster(conn *amqp.Connection, cfg config.AMQPConfig) (*AMQPBroadcaster, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, errs.Wrap(err, "failed to open amqp channel")
	}
	// Idempotent; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, errs.Wrap(err, "failed to declare seat update queue")
	}
	return &AMQPBroadcaster{conn: conn, ch: ch, cfg: cfg}, nil
}

func (b *AMQPBroadcaster) Publish(ctx context.Context, showID uuid.UUID, seats []commands.SeatUpdate) error {
	body, err := json.Marshal(seatUpdateEvent{
		ShowID: showID,
		Seats:  seats,
		SentAt: time.Now().UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal seat update event")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.ch.PublishWithContext(ctx, "", b.cfg.Queue, false, false, pub); err != nil {
		return errs.Wrap(err, "failed to publish seat update")
	}
	return nil
}

func (b *AMQPBroadcaster) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ch.Close()
}
