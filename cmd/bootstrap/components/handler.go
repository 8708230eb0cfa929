package components

import (
	"booking-core/internal/handler"
	"booking-core/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewCartHandler,
	),
	fx.Invoke(handler.NewRouter),
)
