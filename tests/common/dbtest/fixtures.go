//go:build e2e

// Package dbtest seeds and resets the database state the e2e suites run
// against: one tenant with a vendor, two staff members, a service, and the
// users of each role.
package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	TenantID = "tenant-e2e"

	CustomerEmail   = "customer@example.com"
	VendorUserEmail = "owner@example.com"
	AdminEmail      = "admin@example.com"

	// Every seeded user shares this password.
	Password = "password123"
)

// Fixtures carries the ids of the seeded reference rows so tests can
// address them directly.
type Fixtures struct {
	VendorID   uuid.UUID
	ServiceID  uuid.UUID
	StaffID    uuid.UUID
	StaffBID   uuid.UUID
	CustomerID uuid.UUID
	OwnerID    uuid.UUID
	AdminID    uuid.UUID
}

// everyDaySchedule opens all seven weekdays so tests can book any future
// date without reasoning about the calendar.
func everyDaySchedule() ([]byte, error) {
	day := schedule.DaySchedule{
		IsOpen:    true,
		OpenTime:  "09:00",
		CloseTime: "17:00",
		Breaks:    []schedule.BreakWindow{{Start: "12:00", End: "13:00"}},
	}
	weekly := schedule.WeeklySchedule{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		weekly[wd] = day
	}
	return json.Marshal(weekly)
}

// SeedReferenceData inserts the catalog and user rows every e2e suite
// depends on. It is idempotent per fresh database, not per call.
func SeedReferenceData(pool *pgxpool.Pool) (*Fixtures, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	f := &Fixtures{
		VendorID:  uuid.New(),
		ServiceID: uuid.New(),
		StaffID:   uuid.New(),
		StaffBID:  uuid.New(),
	}

	weeklyJSON, err := everyDaySchedule()
	if err != nil {
		return nil, fmt.Errorf("marshal weekly schedule: %w", err)
	}

	for _, staff := range []struct {
		id   uuid.UUID
		name string
	}{
		{f.StaffID, "Alex Kim"},
		{f.StaffBID, "Bea Ortiz"},
	} {
		_, err = pool.Exec(ctx, `
			INSERT INTO staff (id, tenant_id, vendor_id, name, is_active, weekly_schedule, blocked_dates)
			VALUES ($1, $2, $3, $4, true, $5, '[]'::jsonb)`,
			staff.id, TenantID, f.VendorID, staff.name, weeklyJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("seed staff: %w", err)
		}
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO services (id, tenant_id, vendor_id, name, duration_min, price_cents, currency, is_active)
		VALUES ($1, $2, $3, 'Deep Tissue Massage', 60, 8000, 'USD', true)`,
		f.ServiceID, TenantID, f.VendorID,
	)
	if err != nil {
		return nil, fmt.Errorf("seed service: %w", err)
	}

	for _, staffID := range []uuid.UUID{f.StaffID, f.StaffBID} {
		_, err = pool.Exec(ctx,
			`INSERT INTO service_staff (service_id, staff_id) VALUES ($1, $2)`,
			f.ServiceID, staffID,
		)
		if err != nil {
			return nil, fmt.Errorf("seed service_staff: %w", err)
		}
	}

	hash, err := password.Hash(Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	f.CustomerID, err = seedUser(ctx, pool, CustomerEmail, hash, "customer", nil)
	if err != nil {
		return nil, err
	}
	f.OwnerID, err = seedUser(ctx, pool, VendorUserEmail, hash, "vendor", &f.VendorID)
	if err != nil {
		return nil, err
	}
	f.AdminID, err = seedUser(ctx, pool, AdminEmail, hash, "admin", nil)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func seedUser(ctx context.Context, pool *pgxpool.Pool, email, hash, role string, vendorID *uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, tenant_id, email, password_hash, role, vendor_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)`,
		id, TenantID, email, hash, role, vendorID,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seed user %s: %w", email, err)
	}
	return id, nil
}

// ResetBookings wipes booking state between subtests. Catalog and user rows
// are immutable reference data and survive.
func ResetBookings(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE booking_status_history, bookings`)
	if err != nil {
		return fmt.Errorf("reset bookings: %w", err)
	}
	return nil
}
