package commands

import (
	"context"
	"errors"
	"slices"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/catalog"
	"slotbook/internal/domain/identity"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPastBooking             = errs.New("booking must be in the future")
	ErrServiceNotFound         = errs.New("service not found")
	ErrStaffNotQualified       = errs.New("staff not qualified for service")
	ErrSlotUnavailable         = errs.New("slot unavailable")
	ErrInvalidClock            = errs.New("invalid time format")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidStatus           = errs.New("invalid status transition target")
	ErrTerminalStatus          = errs.New("booking already in a terminal status")
	ErrForbidden               = errs.New("actor not allowed to perform transition")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// refAttempts bounds retries on booking_ref collisions; at 36^8 refs a
// second collision in a row means something is broken.
const refAttempts = 3

type ReserveParams struct {
	ServiceID uuid.UUID
	StaffID   uuid.UUID
	Date      string
	StartTime string
	Notes     *string
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByRefForUpdate(ctx context.Context, tx db.DBTX, tenantID, ref string) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

// SlotInvalidator drops cached availability after a write changes the
// booking set of a staff member's day.
type SlotInvalidator interface {
	Invalidate(ctx context.Context, tenantID string, staffID uuid.UUID, date string)
}

type BookingCommands interface {
	Reserve(ctx context.Context, tenantID string, customerID uuid.UUID, p ReserveParams) (*queries.BookingView, error)
	Transition(ctx context.Context, tenantID, ref string, actor identity.Actor, target string, note *string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	repo      BookingRepository
	catalog   queries.CatalogReader
	busy      queries.BusyIntervalSource
	readStore queries.BookingReadStore
	cache     SlotInvalidator
	pool      *pgxpool.Pool
	clock     clock.Clock
	location  *time.Location
	stepMin   int
}

func NewBookingCommands(
	repo BookingRepository,
	catalogReader queries.CatalogReader,
	busy queries.BusyIntervalSource,
	readStore queries.BookingReadStore,
	cache SlotInvalidator,
	pool *pgxpool.Pool,
	clk clock.Clock,
	location *time.Location,
	stepMin int,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:      repo,
		catalog:   catalogReader,
		busy:      busy,
		readStore: readStore,
		cache:     cache,
		pool:      pool,
		clock:     clk,
		location:  location,
		stepMin:   stepMin,
	}
}

// Reserve validates the requested slot against the latest state and
// persists the booking. The availability re-check here is a courtesy for
// callers holding stale slot lists; the exclusion constraint is what
// actually decides concurrent writers, so a lost race surfaces as
// ErrSlotUnavailable rather than a double booking.
func (c *bookingCommandsImpl) Reserve(ctx context.Context, tenantID string, customerID uuid.UUID, p ReserveParams) (*queries.BookingView, error) {
	startAt, startMin, err := c.parseStart(p.Date, p.StartTime)
	if err != nil {
		return nil, err
	}
	if !startAt.After(c.clock.Now().In(c.location)) {
		return nil, ErrPastBooking
	}

	svc, err := c.catalog.FindService(ctx, tenantID, p.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !svc.IsActive {
		return nil, ErrServiceNotFound
	}
	if !svc.QualifiesStaff(p.StaffID) {
		return nil, ErrStaffNotQualified
	}

	staff, err := c.catalog.FindStaff(ctx, tenantID, p.StaffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotQualified
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	date, err := time.ParseInLocation(schedule.DateLayout, p.Date, c.location)
	if err != nil {
		return nil, ErrInvalidClock
	}

	// Recompute availability now; never trust a slot list the client
	// fetched earlier.
	open, err := c.slotStillOpen(ctx, tenantID, staff, date, p.Date, p.StartTime, svc.DurationMin)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrSlotUnavailable
	}

	view, err := c.persistWithFreshRef(ctx, func(ref string) *booking.Booking {
		return booking.NewBooking(
			ref, tenantID, customerID, staff.ID, svc.ID, svc.VendorID,
			date, startMin, svc.DurationMin, svc.PriceCents, svc.Currency,
			p.Notes, c.clock.Now(),
		)
	}, tenantID)
	if err != nil {
		return nil, err
	}

	c.cache.Invalidate(ctx, tenantID, staff.ID, p.Date)
	return view, nil
}

func (c *bookingCommandsImpl) persistWithFreshRef(ctx context.Context, build func(ref string) *booking.Booking, tenantID string) (*queries.BookingView, error) {
	for attempt := 0; attempt < refAttempts; attempt++ {
		ref, err := booking.NewRef()
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity := build(ref)
		_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
			return struct{}{}, c.repo.Create(ctx, tx, entity)
		})
		if err == nil {
			return c.readBack(ctx, tenantID, ref)
		}
		if infra.IsKind(err, infra.KindConflict) {
			// Lost the race for the slot itself.
			return nil, ErrSlotUnavailable
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			continue // ref collision, try a new one
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil, errs.Mark(errs.New("booking ref collisions exhausted retries"), ErrDatabaseOperationFailed)
}

// Transition moves a booking through its lifecycle under the actor's
// authority. Row lock, guard checks, status update and history append all
// run in one transaction.
func (c *bookingCommandsImpl) Transition(ctx context.Context, tenantID, ref string, actor identity.Actor, target string, note *string) (*queries.BookingView, error) {
	status := booking.Status(target)
	if !status.IsValid() || status == booking.StatusPending {
		return nil, ErrInvalidStatus
	}

	entity, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (*booking.Booking, error) {
		b, err := c.repo.FindByRefForUpdate(ctx, tx, tenantID, ref)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		facts := booking.BookingFacts{CustomerID: b.CustomerID(), VendorID: b.VendorID()}
		if !booking.CanTransition(actor, facts, status) {
			return nil, ErrForbidden
		}

		if err := b.Transition(status, actor.ID, note, c.clock.Now()); err != nil {
			if errors.Is(err, booking.ErrTerminalStatus) {
				return nil, ErrTerminalStatus
			}
			return nil, ErrInvalidStatus
		}

		if err := c.repo.UpdateStatus(ctx, tx, b); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}

	// Cancellations and no-shows free the slot for other customers.
	if !entity.Status().Occupies() {
		c.cache.Invalidate(ctx, tenantID, entity.StaffID(), entity.Date().Format(schedule.DateLayout))
	}

	return c.readBack(ctx, tenantID, ref)
}

func (c *bookingCommandsImpl) readBack(ctx context.Context, tenantID, ref string) (*queries.BookingView, error) {
	view, err := c.readStore.FindByRef(ctx, tenantID, ref)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) parseStart(date, startTime string) (time.Time, int, error) {
	day, err := time.ParseInLocation(schedule.DateLayout, date, c.location)
	if err != nil {
		return time.Time{}, 0, ErrInvalidClock
	}
	startMin, err := schedule.ToMinutes(startTime)
	if err != nil {
		return time.Time{}, 0, ErrInvalidClock
	}
	return day.Add(time.Duration(startMin) * time.Minute), startMin, nil
}

func (c *bookingCommandsImpl) slotStillOpen(ctx context.Context, tenantID string, staff *catalog.Staff, day time.Time, date, startTime string, durationMin int) (bool, error) {
	busy, err := c.busy.BusyIntervals(ctx, tenantID, staff.ID, date)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	blocked := staff.IsBlocked(date) || !staff.IsActive
	daySchedule, _ := staff.Weekly.DayFor(day)

	slots, err := schedule.AvailableSlots(daySchedule, blocked, durationMin, c.stepMin, busy)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return slices.Contains(slots, startTime), nil
}
