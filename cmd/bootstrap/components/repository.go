package components

import (
	"slotbook/internal/infra/cache"
	"slotbook/internal/infra/db"
	"slotbook/internal/infra/readstore"
	repo_impl "slotbook/internal/infra/repository"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(queries.CatalogReader)),
		),
		// Read-side store doubles as the busy-interval source for the
		// availability sweep.
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.BusyIntervalSource)),
		),
		fx.Annotate(
			NewSlotCacheBinding,
			fx.As(new(queries.SlotCache)),
			fx.As(new(commands.SlotInvalidator)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewSlotCacheBinding(c *cache.SlotCache) *cache.SlotCache {
	return c
}
