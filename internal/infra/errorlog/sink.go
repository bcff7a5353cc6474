package errorlog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Cap the stored trace so one entry cannot blow up a log row.
const maxTraceBytes = 2000

// PostgresSink writes failures to the durable error_logs table. By contract
// it never throws back into the caller's control flow: a failed insert is
// logged and dropped.
type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(pool *pgxpool.Pool) *PostgresSink {
	return &PostgresSink{pool: pool}
}

func (s *PostgresSink) Record(ctx context.Context, source, message string, trace []string, at time.Time) {
	const query = `
		INSERT INTO error_logs (source, message, stack_trace, logged_at)
		VALUES ($1, $2, $3, $4)
	`
	var stackTrace *string
	if len(trace) > 0 {
		joined := strings.Join(trace, "\n")
		if len(joined) > maxTraceBytes {
			joined = joined[:maxTraceBytes]
		}
		stackTrace = &joined
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.pool.Exec(ctx, query, source, message, stackTrace, at); err != nil {
		slog.Error("failed to record error log",
			"source", source, "message", message, "error", err.Error())
	}
}
