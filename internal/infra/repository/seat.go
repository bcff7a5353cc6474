package repository

import (
	"context"
	"time"

	"cinema-booking/internal/domain/seat"
	"cinema-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SeatRepository struct {
	db DBTX
}

func NewSeatRepository(db DBTX) *SeatRepository {
	return &SeatRepository{db: db}
}

// LockBySeatNos takes exclusive, blocking row locks on exactly the targeted
// seats. The fixed ORDER BY keeps overlapping acquisitions in one global
// order so they cannot deadlock each other.
func (r *SeatRepository) LockBySeatNos(ctx context.Context, showID uuid.UUID, seatNos []string) ([]*seat.Seat, error) {
	const query = `
		SELECT show_id, seat_no, seat_type, state, lease_holder, leased_at, booked_at
		FROM seats
		WHERE show_id = $1 AND seat_no = ANY($2)
		ORDER BY seat_no
		FOR UPDATE
	`
	rows, err := r.db.Query(ctx, query, showID, seatNos)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock seat rows", err)
	}
	defer rows.Close()

	var seats []*seat.Seat
	for rows.Next() {
		st, err := scanSeat(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan seat row", err)
		}
		seats = append(seats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read seat rows", err)
	}
	return seats, nil
}

func (r *SeatRepository) Save(ctx context.Context, seats []*seat.Seat) error {
	const query = `
		UPDATE seats
		SET state = $3, lease_holder = $4, leased_at = $5, booked_at = $6
		WHERE show_id = $1 AND seat_no = $2
	`
	batch := &pgx.Batch{}
	for _, st := range seats {
		batch.Queue(query,
			st.ShowID(), st.SeatNo(),
			st.State().String(), st.LeaseHolder(), st.LeasedAt(), st.BookedAt(),
		)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr("failed to save seat states", err)
	}
	return nil
}

func (r *SeatRepository) InsertMap(ctx context.Context, seats []*seat.Seat) error {
	const query = `
		INSERT INTO seats (show_id, seat_no, seat_type, state, lease_holder, leased_at, booked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	batch := &pgx.Batch{}
	for _, st := range seats {
		batch.Queue(query,
			st.ShowID(), st.SeatNo(), string(st.SeatType()),
			st.State().String(), st.LeaseHolder(), st.LeasedAt(), st.BookedAt(),
		)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("seat map already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert seat map", err)
	}
	return nil
}

// ReleaseExpiredLeases clears stale soft locks on non-booked seats.
// SKIP LOCKED keeps the sweep from waiting on, or clobbering, a row an
// in-flight booking transaction currently holds.
func (r *SeatRepository) ReleaseExpiredLeases(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `
		WITH stale AS (
			SELECT show_id, seat_no
			FROM seats
			WHERE state = 'LEASED' AND leased_at < $1
			FOR UPDATE SKIP LOCKED
		)
		UPDATE seats s
		SET state = 'FREE', lease_holder = NULL, leased_at = NULL
		FROM stale
		WHERE s.show_id = stale.show_id AND s.seat_no = stale.seat_no
	`
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release expired leases", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeat(row rowScanner) (*seat.Seat, error) {
	var (
		showID      uuid.UUID
		seatNo      string
		seatType    string
		state       string
		leaseHolder *string
		leasedAt    *time.Time
		bookedAt    *time.Time
	)
	if err := row.Scan(&showID, &seatNo, &seatType, &state, &leaseHolder, &leasedAt, &bookedAt); err != nil {
		return nil, err
	}
	return seat.Reconstruct(
		showID, seatNo,
		seat.Type(seatType), seat.State(state),
		leaseHolder, leasedAt, bookedAt,
	), nil
}
