package repository

import (
	"context"

	"cinema-booking/internal/domain/show"
	"cinema-booking/internal/infra"
)

type ShowRepository struct {
	db DBTX
}

func NewShowRepository(db DBTX) *ShowRepository {
	return &ShowRepository{db: db}
}

func (r *ShowRepository) Create(ctx context.Context, s *show.Show) error {
	const query = `
		INSERT INTO shows (id, movie_title, hall_no, start_time, price_cents)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID(), s.MovieTitle(), s.HallNo(), s.StartTime(), s.PriceCents(),
	)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("show already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create show", err)
	}
	return nil
}
