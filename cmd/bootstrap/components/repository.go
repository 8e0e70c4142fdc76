package components

import (
	"meet-scheduler/internal/infra/kv"
	repo_impl "meet-scheduler/internal/infra/repository"
	"meet-scheduler/internal/usecase/commands"
	"meet-scheduler/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewKVStore,
		fx.Annotate(
			repo_impl.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
			fx.As(new(queries.RequestReader)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReader)),
		),
	),
)

func NewKVStore(pool *pgxpool.Pool) kv.Store {
	return kv.NewPostgresStore(pool)
}
