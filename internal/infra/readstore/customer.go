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

// CustomerReadStore implements the Customer Directory collaborator contract.
type CustomerReadStore struct {
	pool *pgxpool.Pool
}

func NewCustomerReadStore(pool *pgxpool.Pool) *CustomerReadStore {
	return &CustomerReadStore{pool: pool}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	const query = `
		SELECT id, name, email, active
		FROM customers
		WHERE id = $1
	`
	var snap shared.CustomerSnapshot
	err := r.pool.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.Email, &snap.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return &snap, nil
}
