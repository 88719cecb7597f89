package queries

import (
	"context"
	"sort"
	"time"

	"slotbook/internal/domain/catalog"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrServiceNotFound   = errs.New("service not found")
	ErrStaffNotQualified = errs.New("staff not qualified for service")
	ErrInvalidDate       = errs.New("invalid date")
)

type StaffSlots struct {
	StaffID   uuid.UUID `json:"staffId"`
	StaffName string    `json:"staffName"`
	Slots     []string  `json:"slots"`
}

type SlotsView struct {
	ServiceID   uuid.UUID    `json:"serviceId"`
	Date        string       `json:"date"`
	DurationMin int          `json:"durationMin"`
	StepMin     int          `json:"stepMin"`
	Staff       []StaffSlots `json:"staff"`
}

type CatalogReader interface {
	FindService(ctx context.Context, tenantID string, serviceID uuid.UUID) (*catalog.Service, error)
	FindStaff(ctx context.Context, tenantID string, staffID uuid.UUID) (*catalog.Staff, error)
	FindStaffByIDs(ctx context.Context, tenantID string, ids []uuid.UUID) ([]*catalog.Staff, error)
}

type BusyIntervalSource interface {
	BusyIntervals(ctx context.Context, tenantID string, staffID uuid.UUID, date string) ([]schedule.Interval, error)
}

// SlotCache caches computed slot lists for a short TTL. A nil-safe noop
// implementation is acceptable; the cache is an optimization only.
type SlotCache interface {
	Get(ctx context.Context, key SlotCacheKey) ([]string, bool)
	Set(ctx context.Context, key SlotCacheKey, slots []string)
}

type SlotCacheKey struct {
	TenantID    string
	StaffID     uuid.UUID
	Date        string
	DurationMin int
	StepMin     int
}

type AvailabilityQueries interface {
	// GetSlots runs the slot computation for one named staff member, or for
	// every staff qualified for the service when staffID is nil. The
	// per-staff computations are independent and run concurrently.
	GetSlots(ctx context.Context, tenantID string, serviceID uuid.UUID, staffID *uuid.UUID, date string) (*SlotsView, error)

	// SlotsForStaff is the single-staff primitive Reserve re-checks against.
	SlotsForStaff(ctx context.Context, tenantID string, staff *catalog.Staff, date string, durationMin int) ([]string, error)
}

type availabilityQueriesImpl struct {
	catalog CatalogReader
	busy    BusyIntervalSource
	cache   SlotCache
	stepMin int
}

func NewAvailabilityQueries(catalogReader CatalogReader, busy BusyIntervalSource, cache SlotCache, stepMin int) AvailabilityQueries {
	return &availabilityQueriesImpl{
		catalog: catalogReader,
		busy:    busy,
		cache:   cache,
		stepMin: stepMin,
	}
}

func (a *availabilityQueriesImpl) GetSlots(ctx context.Context, tenantID string, serviceID uuid.UUID, staffID *uuid.UUID, date string) (*SlotsView, error) {
	if _, err := time.Parse(schedule.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	svc, err := a.catalog.FindService(ctx, tenantID, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !svc.IsActive {
		return nil, ErrServiceNotFound
	}

	staff, err := a.resolveStaff(ctx, tenantID, svc, staffID)
	if err != nil {
		return nil, err
	}

	view := &SlotsView{
		ServiceID:   svc.ID,
		Date:        date,
		DurationMin: svc.DurationMin,
		StepMin:     a.stepMin,
		Staff:       make([]StaffSlots, len(staff)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, st := range staff {
		g.Go(func() error {
			slots, err := a.SlotsForStaff(gctx, tenantID, st, date, svc.DurationMin)
			if err != nil {
				return err
			}
			view.Staff[i] = StaffSlots{StaffID: st.ID, StaffName: st.Name, Slots: slots}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(view.Staff, func(i, j int) bool {
		return view.Staff[i].StaffName < view.Staff[j].StaffName
	})
	return view, nil
}

func (a *availabilityQueriesImpl) SlotsForStaff(ctx context.Context, tenantID string, staff *catalog.Staff, date string, durationMin int) ([]string, error) {
	key := SlotCacheKey{
		TenantID:    tenantID,
		StaffID:     staff.ID,
		Date:        date,
		DurationMin: durationMin,
		StepMin:     a.stepMin,
	}
	if slots, ok := a.cache.Get(ctx, key); ok {
		return slots, nil
	}

	busy, err := a.busy.BusyIntervals(ctx, tenantID, staff.ID, date)
	if err != nil {
		return nil, err
	}

	day, blocked, err := dayFor(staff, date)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.AvailableSlots(day, blocked, durationMin, a.stepMin, busy)
	if err != nil {
		return nil, err
	}

	a.cache.Set(ctx, key, slots)
	return slots, nil
}

func (a *availabilityQueriesImpl) resolveStaff(ctx context.Context, tenantID string, svc *catalog.Service, staffID *uuid.UUID) ([]*catalog.Staff, error) {
	if staffID != nil {
		if !svc.QualifiesStaff(*staffID) {
			return nil, ErrStaffNotQualified
		}
		st, err := a.catalog.FindStaff(ctx, tenantID, *staffID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrStaffNotQualified
			}
			return nil, err
		}
		return []*catalog.Staff{st}, nil
	}

	if len(svc.StaffIDs) == 0 {
		return nil, nil
	}
	return a.catalog.FindStaffByIDs(ctx, tenantID, svc.StaffIDs)
}

func dayFor(staff *catalog.Staff, date string) (schedule.DaySchedule, bool, error) {
	parsed, err := time.Parse(schedule.DateLayout, date)
	if err != nil {
		return schedule.DaySchedule{}, false, ErrInvalidDate
	}

	blocked := staff.IsBlocked(date) || !staff.IsActive
	day, ok := staff.Weekly.DayFor(parsed)
	if !ok {
		return schedule.DaySchedule{}, blocked, nil
	}
	return day, blocked, nil
}
