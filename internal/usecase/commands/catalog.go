package commands

import (
	"context"
	"time"

	"cinema-booking/internal/domain/show"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateShowParams struct {
	MovieTitle string
	HallNo     int
	StartTime  time.Time
	PriceCents int64
	Seats      []show.SeatSpec
}

// CatalogCommands provisions a show together with its immutable seat map.
// The seat rows created here are the ledger the coordinator governs.
type CatalogCommands interface {
	CreateShow(ctx context.Context, p CreateShowParams) (uuid.UUID, error)
}

type catalogCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogCommands(uow shared.UnitOfWork) CatalogCommands {
	return &catalogCommandsImpl{uow: uow}
}

func (c *catalogCommandsImpl) CreateShow(ctx context.Context, p CreateShowParams) (uuid.UUID, error) {
	s, err := show.NewShow(p.MovieTitle, p.HallNo, p.StartTime, p.PriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidShowSpec)
	}
	seats, err := s.BuildSeatMap(p.Seats)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidShowSpec)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Shows().Create(ctx, s); err != nil {
			return err
		}
		return tx.Seats().InsertMap(ctx, seats)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return s.ID(), nil
}
