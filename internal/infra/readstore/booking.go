package readstore

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const findByRefSQL = `
SELECT b.booking_ref, b.customer_id, b.staff_id, st.name, b.service_id, sv.name,
       b.vendor_id, b.date, b.start_min, b.end_min, b.duration_min,
       b.price_cents, b.currency, b.status, b.payment_status, b.notes,
       b.created_at, b.updated_at
FROM bookings b
JOIN staff st ON st.id = b.staff_id
JOIN services sv ON sv.id = b.service_id
WHERE b.tenant_id = $1 AND b.booking_ref = $2`

const historyByRefSQL = `
SELECT h.status, h.note, h.changed_by, h.changed_at
FROM booking_status_history h
JOIN bookings b ON b.id = h.booking_id
WHERE b.tenant_id = $1 AND b.booking_ref = $2
ORDER BY h.id`

func (r *BookingReadStore) FindByRef(ctx context.Context, tenantID, ref string) (*queries.BookingView, error) {
	var (
		view             queries.BookingView
		date             time.Time
		startMin, endMin int
	)
	err := r.db.QueryRow(ctx, findByRefSQL, tenantID, ref).Scan(
		&view.Ref, &view.CustomerID, &view.StaffID, &view.StaffName, &view.ServiceID, &view.ServiceName,
		&view.VendorID, &date, &startMin, &endMin, &view.DurationMin,
		&view.PriceCents, &view.Currency, &view.Status, &view.PaymentStatus, &view.Notes,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ref", err)
	}

	view.Date = date.Format(schedule.DateLayout)
	if view.StartTime, err = schedule.ToClock(startMin); err != nil {
		return nil, infra.WrapRepoErr("corrupt start time", err)
	}
	if view.EndTime, err = schedule.ToClock(endMin); err != nil {
		return nil, infra.WrapRepoErr("corrupt end time", err)
	}

	history, err := r.historyByRef(ctx, tenantID, ref)
	if err != nil {
		return nil, err
	}
	view.History = history
	return &view, nil
}

func (r *BookingReadStore) historyByRef(ctx context.Context, tenantID, ref string) ([]queries.HistoryEntryView, error) {
	rows, err := r.db.Query(ctx, historyByRefSQL, tenantID, ref)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load status history", err)
	}
	defer rows.Close()

	var history []queries.HistoryEntryView
	for rows.Next() {
		var entry queries.HistoryEntryView
		if err := rows.Scan(&entry.Status, &entry.Note, &entry.ChangedBy, &entry.ChangedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan history row", err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate history rows", err)
	}
	return history, nil
}

const listByCustomerSQL = `
SELECT b.booking_ref, b.staff_id, st.name, sv.name, b.date, b.start_min, b.end_min,
       b.status, b.price_cents, b.currency, b.created_at,
       COUNT(*) OVER () AS total
FROM bookings b
JOIN staff st ON st.id = b.staff_id
JOIN services sv ON sv.id = b.service_id
WHERE b.tenant_id = $1
  AND b.customer_id = $2
  AND ($3::text IS NULL OR b.status = $3)
ORDER BY b.created_at DESC, b.id
LIMIT $4 OFFSET $5`

func (r *BookingReadStore) FindByCustomer(ctx context.Context, tenantID string, customerID uuid.UUID, filter queries.CustomerFilter, limit, offset int32) ([]*queries.BookingListItem, int64, error) {
	rows, err := r.db.Query(ctx, listByCustomerSQL, tenantID, customerID, filter.Status, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list customer bookings", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

const listByVendorSQL = `
SELECT b.booking_ref, b.staff_id, st.name, sv.name, b.date, b.start_min, b.end_min,
       b.status, b.price_cents, b.currency, b.created_at,
       COUNT(*) OVER () AS total
FROM bookings b
JOIN staff st ON st.id = b.staff_id
JOIN services sv ON sv.id = b.service_id
WHERE b.tenant_id = $1
  AND b.vendor_id = $2
  AND ($3::date IS NULL OR b.date = $3)
  AND ($4::uuid IS NULL OR b.staff_id = $4)
  AND ($5::text IS NULL OR b.status = $5)
ORDER BY b.date, b.start_min, b.id
LIMIT $6 OFFSET $7`

// FindByVendor backs the vendor's schedule board: the day/staff/status
// filters are optional, ordering is chronological within the day.
func (r *BookingReadStore) FindByVendor(ctx context.Context, tenantID string, vendorID uuid.UUID, filter queries.VendorFilter, limit, offset int32) ([]*queries.BookingListItem, int64, error) {
	rows, err := r.db.Query(ctx, listByVendorSQL, tenantID, vendorID, filter.Date, filter.StaffID, filter.Status, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list vendor bookings", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

const busyIntervalsSQL = `
SELECT start_min, end_min
FROM bookings
WHERE tenant_id = $1 AND staff_id = $2 AND date = $3
  AND status NOT IN ('cancelled', 'no_show')
ORDER BY start_min`

// BusyIntervals feeds the availability sweep; cancelled and no-show
// bookings do not occupy their slot.
func (r *BookingReadStore) BusyIntervals(ctx context.Context, tenantID string, staffID uuid.UUID, date string) ([]schedule.Interval, error) {
	rows, err := r.db.Query(ctx, busyIntervalsSQL, tenantID, staffID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load busy intervals", err)
	}
	defer rows.Close()

	var busy []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan busy interval", err)
		}
		busy = append(busy, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate busy intervals", err)
	}
	return busy, nil
}

func scanListItems(rows pgx.Rows) ([]*queries.BookingListItem, int64, error) {
	var (
		items []*queries.BookingListItem
		total int64
	)
	for rows.Next() {
		var (
			item             queries.BookingListItem
			date             time.Time
			startMin, endMin int
		)
		if err := rows.Scan(
			&item.Ref, &item.StaffID, &item.StaffName, &item.ServiceName, &date, &startMin, &endMin,
			&item.Status, &item.PriceCents, &item.Currency, &item.CreatedAt, &total,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan booking row", err)
		}

		item.Date = date.Format(schedule.DateLayout)
		var err error
		if item.StartTime, err = schedule.ToClock(startMin); err != nil {
			return nil, 0, infra.WrapRepoErr("corrupt start time", err)
		}
		if item.EndTime, err = schedule.ToClock(endMin); err != nil {
			return nil, 0, infra.WrapRepoErr("corrupt end time", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, total, nil
}
