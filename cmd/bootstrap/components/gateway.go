package components

import (
	"meet-scheduler/internal/infra/calendar"
	"meet-scheduler/internal/infra/notify"
	"meet-scheduler/internal/usecase/commands"
	"meet-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

// External side-channels: Google Calendar and the email worker webhook.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			calendar.NewGoogleCalendar,
			fx.As(new(commands.CalendarGateway)),
			fx.As(new(queries.BusyReader)),
		),
		fx.Annotate(
			notify.NewWebhookNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)
