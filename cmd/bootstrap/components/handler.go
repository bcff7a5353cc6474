package components

import (
	"cinema-booking/internal/handler"
	"cinema-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCatalogHandler,
	),
	fx.Invoke(handler.NewRouter),
)
