// Package catalog holds read-only snapshots of the service and staff
// catalog. The scheduling core reads this data but does not own its CRUD.
package catalog

import (
	"slices"

	"slotbook/internal/domain/schedule"

	"github.com/google/uuid"
)

type Service struct {
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

func (s Service) QualifiesStaff(staffID uuid.UUID) bool {
	return slices.Contains(s.StaffIDs, staffID)
}

type Staff struct {
	ID           uuid.UUID
	TenantID     string
	VendorID     uuid.UUID
	Name         string
	IsActive     bool
	Weekly       schedule.WeeklySchedule
	BlockedDates []string
}

// IsBlocked matches exact calendar-date strings, not ranges.
func (s Staff) IsBlocked(date string) bool {
	return slices.Contains(s.BlockedDates, date)
}
