package readstore

import (
	"context"
	"errors"

	"cinema-booking/internal/infra"
	"cinema-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ShowReadStore implements the Show Catalog collaborator contract.
type ShowReadStore struct {
	pool *pgxpool.Pool
}

func NewShowReadStore(pool *pgxpool.Pool) *ShowReadStore {
	return &ShowReadStore{pool: pool}
}

func (r *ShowReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ShowSnapshot, error) {
	const query = `
		SELECT id, movie_title, hall_no, start_time, price_cents
		FROM shows
		WHERE id = $1
	`
	var snap shared.ShowSnapshot
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.MovieTitle, &snap.HallNo, &snap.StartTime, &snap.PriceCents,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("show not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find show by ID", err)
	}
	return &snap, nil
}
