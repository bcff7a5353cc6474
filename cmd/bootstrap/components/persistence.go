package components

import (
	"cinema-booking/internal/infra/errorlog"
	"cinema-booking/internal/infra/printer"
	"cinema-booking/internal/infra/readstore"
	"cinema-booking/internal/infra/uow"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/usecase/commands"
	"cinema-booking/internal/usecase/queries"
	"cinema-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule wires everything backed by Postgres: the transactional
// unit of work the coordinator runs inside, the read stores the queries and
// precondition checks go through, and the durable error sink.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewUnitOfWork,
		fx.Annotate(
			readstore.NewSeatReadStore,
			fx.As(new(queries.SeatReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(commands.CustomerDirectory)),
		),
		fx.Annotate(
			readstore.NewShowReadStore,
			fx.As(new(commands.ShowCatalog)),
		),
		fx.Annotate(
			errorlog.NewPostgresSink,
			fx.As(new(commands.ErrorSink)),
		),
		fx.Annotate(
			NewTicketPrinter,
			fx.As(new(commands.TicketPrinter)),
		),
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, cfg.Booking.MaxTxRetries)
}

func NewTicketPrinter(cfg config.Config) *printer.SpoolPrinter {
	return printer.NewSpoolPrinter(cfg.Printer)
}
