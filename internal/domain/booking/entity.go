package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus  = errors.New("invalid booking status")
	ErrTerminalStatus = errors.New("booking is in a terminal status")
	ErrEmptyHistory   = errors.New("booking must carry at least one history entry")
)

// StatusChange is one entry of the append-only status history.
type StatusChange struct {
	Status    Status
	Note      *string
	ChangedBy *uuid.UUID
	ChangedAt time.Time
}

type Booking struct {
	id            uuid.UUID
	ref           string
	tenantID      string
	customerID    uuid.UUID
	staffID       uuid.UUID
	serviceID     uuid.UUID
	vendorID      uuid.UUID
	date          time.Time
	startMin      int
	endMin        int
	durationMin   int
	priceCents    int64
	currency      string
	status        Status
	paymentStatus PaymentStatus
	notes         *string
	history       []StatusChange
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking constructs a pending booking with its history seeded by the
// creation entry. Duration, price and currency are the caller's snapshot of
// the service at booking time; end is derived once and never edited.
func NewBooking(
	ref string,
	tenantID string,
	customerID, staffID, serviceID, vendorID uuid.UUID,
	date time.Time,
	startMin, durationMin int,
	priceCents int64,
	currency string,
	notes *string,
	now time.Time,
) *Booking {
	return &Booking{
		id:            uuid.New(),
		ref:           ref,
		tenantID:      tenantID,
		customerID:    customerID,
		staffID:       staffID,
		serviceID:     serviceID,
		vendorID:      vendorID,
		date:          date,
		startMin:      startMin,
		endMin:        startMin + durationMin,
		durationMin:   durationMin,
		priceCents:    priceCents,
		currency:      currency,
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		notes:         notes,
		history: []StatusChange{
			{Status: StatusPending, ChangedBy: &customerID, ChangedAt: now},
		},
	}
}

func Reconstruct(
	id uuid.UUID,
	ref string,
	tenantID string,
	customerID, staffID, serviceID, vendorID uuid.UUID,
	date time.Time,
	startMin, endMin, durationMin int,
	priceCents int64,
	currency string,
	status Status,
	paymentStatus PaymentStatus,
	notes *string,
	history []StatusChange,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}
	return &Booking{
		id:            id,
		ref:           ref,
		tenantID:      tenantID,
		customerID:    customerID,
		staffID:       staffID,
		serviceID:     serviceID,
		vendorID:      vendorID,
		date:          date,
		startMin:      startMin,
		endMin:        endMin,
		durationMin:   durationMin,
		priceCents:    priceCents,
		currency:      currency,
		status:        status,
		paymentStatus: paymentStatus,
		notes:         notes,
		history:       history,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// Transition moves the booking to target and appends the history entry.
// Pending is a creation-only state and never a transition target; terminal
// states have no outbound transitions. Authorization is the caller's job
// (see CanTransition) so the rule stays independently testable.
func (b *Booking) Transition(target Status, changedBy uuid.UUID, note *string, now time.Time) error {
	if !target.IsValid() || target == StatusPending {
		return ErrInvalidStatus
	}
	if b.status.IsTerminal() {
		return ErrTerminalStatus
	}

	b.status = target
	b.history = append(b.history, StatusChange{
		Status:    target,
		Note:      note,
		ChangedBy: &changedBy,
		ChangedAt: now,
	})
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Ref() string                  { return b.ref }
func (b *Booking) TenantID() string             { return b.tenantID }
func (b *Booking) CustomerID() uuid.UUID        { return b.customerID }
func (b *Booking) StaffID() uuid.UUID           { return b.staffID }
func (b *Booking) ServiceID() uuid.UUID         { return b.serviceID }
func (b *Booking) VendorID() uuid.UUID          { return b.vendorID }
func (b *Booking) Date() time.Time              { return b.date }
func (b *Booking) StartMin() int                { return b.startMin }
func (b *Booking) EndMin() int                  { return b.endMin }
func (b *Booking) DurationMin() int             { return b.durationMin }
func (b *Booking) PriceCents() int64            { return b.priceCents }
func (b *Booking) Currency() string             { return b.currency }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Notes() *string               { return b.notes }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// History returns a copy; the underlying list is append-only.
func (b *Booking) History() []StatusChange {
	out := make([]StatusChange, len(b.history))
	copy(out, b.history)
	return out
}

// LastChange is the most recent history entry; its status always equals the
// booking's current status.
func (b *Booking) LastChange() StatusChange {
	return b.history[len(b.history)-1]
}
