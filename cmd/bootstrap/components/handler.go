package components

import (
	"meet-scheduler/internal/handler"
	"meet-scheduler/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
