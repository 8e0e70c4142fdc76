package components

import (
	"meet-scheduler/internal/domain/catalog"
	"meet-scheduler/internal/pkg/clock"
	"meet-scheduler/internal/usecase/commands"
	"meet-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	catalog.Default,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSchedulingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewSchedulingQueries,
	),
)
