package components

import (
	"time"

	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewLocation,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewBookingQueries,
		NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		NewBookingCommands,
	),
)

func NewLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Booking.Timezone)
}

func NewBookingQueries(store queries.BookingReadStore, cfg config.Config) queries.BookingQueries {
	return queries.NewBookingQueries(store, cfg.Booking.DefaultPageSize, cfg.Booking.MaxPageSize)
}

func NewAvailabilityQueries(
	catalogReader queries.CatalogReader,
	busy queries.BusyIntervalSource,
	slotCache queries.SlotCache,
	cfg config.Config,
) queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(catalogReader, busy, slotCache, cfg.Booking.SlotIntervalMinutes)
}

func NewBookingCommands(
	repo commands.BookingRepository,
	catalogReader queries.CatalogReader,
	busy queries.BusyIntervalSource,
	readStore queries.BookingReadStore,
	invalidator commands.SlotInvalidator,
	pool *pgxpool.Pool,
	clk clock.Clock,
	location *time.Location,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingCommands(
		repo, catalogReader, busy, readStore, invalidator,
		pool, clk, location, cfg.Booking.SlotIntervalMinutes,
	)
}
