package bootstrap

import (
	"meet-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.RepositoryModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
