//go:build unit || e2e

package builder

import (
	"time"

	"slotbook/internal/domain/catalog"
	"slotbook/internal/domain/schedule"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID          uuid.UUID
	TenantID    string
	VendorID    uuid.UUID
	Name        string
	DurationMin int
	PriceCents  int64
	Currency    string
	StaffIDs    []uuid.UUID
	IsActive    bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:          uuid.New(),
		TenantID:    "tenant-1",
		VendorID:    uuid.New(),
		Name:        "Deep Tissue Massage",
		DurationMin: 60,
		PriceCents:  8000,
		Currency:    "USD",
		StaffIDs:    []uuid.UUID{},
		IsActive:    true,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) WithStaff(staffIDs ...uuid.UUID) *ServiceBuilder {
	b.StaffIDs = append(b.StaffIDs, staffIDs...)
	return b
}

func (b *ServiceBuilder) Build() *catalog.Service {
	return &catalog.Service{
		ID:          b.ID,
		TenantID:    b.TenantID,
		VendorID:    b.VendorID,
		Name:        b.Name,
		DurationMin: b.DurationMin,
		PriceCents:  b.PriceCents,
		Currency:    b.Currency,
		StaffIDs:    b.StaffIDs,
		IsActive:    b.IsActive,
	}
}

type StaffBuilder struct {
	ID           uuid.UUID
	TenantID     string
	VendorID     uuid.UUID
	Name         string
	IsActive     bool
	Weekly       schedule.WeeklySchedule
	BlockedDates []string
}

// NewStaffBuilder defaults to a Monday-to-Friday 09:00-17:00 schedule with
// a lunch break 12:00-13:00.
func NewStaffBuilder() *StaffBuilder {
	weekly := schedule.WeeklySchedule{}
	for day := time.Monday; day <= time.Friday; day++ {
		weekly[day] = schedule.DaySchedule{
			IsOpen:    true,
			OpenTime:  "09:00",
			CloseTime: "17:00",
			Breaks:    []schedule.BreakWindow{{Start: "12:00", End: "13:00"}},
		}
	}

	return &StaffBuilder{
		ID:           uuid.New(),
		TenantID:     "tenant-1",
		VendorID:     uuid.New(),
		Name:         "Alex Kim",
		IsActive:     true,
		Weekly:       weekly,
		BlockedDates: []string{},
	}
}

func (b *StaffBuilder) With(mutate func(*StaffBuilder)) *StaffBuilder {
	mutate(b)
	return b
}

func (b *StaffBuilder) WithBlockedDate(date string) *StaffBuilder {
	b.BlockedDates = append(b.BlockedDates, date)
	return b
}

func (b *StaffBuilder) WithDay(day time.Weekday, ds schedule.DaySchedule) *StaffBuilder {
	b.Weekly[day] = ds
	return b
}

func (b *StaffBuilder) Build() *catalog.Staff {
	return &catalog.Staff{
		ID:           b.ID,
		TenantID:     b.TenantID,
		VendorID:     b.VendorID,
		Name:         b.Name,
		IsActive:     b.IsActive,
		Weekly:       b.Weekly,
		BlockedDates: b.BlockedDates,
	}
}
