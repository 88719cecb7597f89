package repository

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the reserve path cares about.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, booking_ref, tenant_id, customer_id, staff_id, service_id, vendor_id,
	date, start_min, end_min, duration_min, price_cents, currency,
	status, payment_status, notes
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

const insertHistorySQL = `
INSERT INTO booking_status_history (booking_id, status, note, changed_by, changed_at)
VALUES ($1, $2, $3, $4, $5)`

// Create persists the booking and its seed history entry. The exclusion
// constraint on (tenant, staff, date, time range) decides races: the losing
// writer surfaces KindConflict. A booking_ref collision surfaces
// KindDuplicateKey so the caller can retry with a fresh ref.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, insertBookingSQL,
		b.ID(), b.Ref(), b.TenantID(), b.CustomerID(), b.StaffID(), b.ServiceID(), b.VendorID(),
		b.Date(), b.StartMin(), b.EndMin(), b.DurationMin(), b.PriceCents(), b.Currency(),
		b.Status().String(), b.PaymentStatus().String(), b.Notes(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgExclusionViolation:
				return infra.WrapRepoErr("booking overlaps an existing one", err, infra.KindConflict)
			case pgUniqueViolation:
				return infra.WrapRepoErr("booking ref already taken", err, infra.KindDuplicateKey)
			}
		}
		return infra.WrapRepoErr("failed to insert booking", err)
	}

	for _, change := range b.History() {
		if err := r.appendHistory(ctx, tx, b, change); err != nil {
			return err
		}
	}
	return nil
}

const findForUpdateSQL = `
SELECT id, booking_ref, tenant_id, customer_id, staff_id, service_id, vendor_id,
       date, start_min, end_min, duration_min, price_cents, currency,
       status, payment_status, notes, created_at, updated_at
FROM bookings
WHERE tenant_id = $1 AND booking_ref = $2
FOR UPDATE`

const historyForBookingSQL = `
SELECT status, note, changed_by, changed_at
FROM booking_status_history
WHERE booking_id = $1
ORDER BY id`

// FindByRefForUpdate loads the booking with a row lock so a transition's
// guard checks and its write happen against the same state.
func (r *BookingRepository) FindByRefForUpdate(ctx context.Context, tx db.DBTX, tenantID, ref string) (*booking.Booking, error) {
	var (
		id, customerID, staffID, serviceID, vendorID uuid.UUID
		bookingRef, tenant, currency                 string
		status, paymentStatus                        string
		notes                                        *string
		date, createdAt, updatedAt                   time.Time
		startMin, endMin, durationMin                int
		priceCents                                   int64
	)
	err := tx.QueryRow(ctx, findForUpdateSQL, tenantID, ref).Scan(
		&id, &bookingRef, &tenant, &customerID, &staffID, &serviceID, &vendorID,
		&date, &startMin, &endMin, &durationMin, &priceCents, &currency,
		&status, &paymentStatus, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking for update", err)
	}

	rows, err := tx.Query(ctx, historyForBookingSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load status history", err)
	}
	defer rows.Close()

	var history []booking.StatusChange
	for rows.Next() {
		var (
			change    booking.StatusChange
			statusStr string
		)
		if err := rows.Scan(&statusStr, &change.Note, &change.ChangedBy, &change.ChangedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan history row", err)
		}
		change.Status = booking.Status(statusStr)
		history = append(history, change)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate history rows", err)
	}

	entity, err := booking.Reconstruct(
		id, bookingRef, tenant, customerID, staffID, serviceID, vendorID,
		date, startMin, endMin, durationMin, priceCents, currency,
		booking.Status(status), booking.PaymentStatus(paymentStatus), notes,
		history, createdAt, updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return entity, nil
}

const updateStatusSQL = `
UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`

// UpdateStatus writes the new status and appends the history entry; callers
// run it inside a transaction so the two stay consistent.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, updateStatusSQL, b.Status().String(), b.UpdatedAt(), b.ID())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return r.appendHistory(ctx, tx, b, b.LastChange())
}

func (r *BookingRepository) appendHistory(ctx context.Context, tx db.DBTX, b *booking.Booking, change booking.StatusChange) error {
	_, err := tx.Exec(ctx, insertHistorySQL,
		b.ID(), change.Status.String(), change.Note, change.ChangedBy, change.ChangedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append status history", err)
	}
	return nil
}
