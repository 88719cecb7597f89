//go:build unit || e2e

package builder

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewBuilder struct {
	Ref        string
	CustomerID uuid.UUID
	StaffID    uuid.UUID
	ServiceID  uuid.UUID
	VendorID   uuid.UUID
	Date       string
	StartTime  string
	Status     string
}

func NewBookingViewBuilder() *BookingViewBuilder {
	return &BookingViewBuilder{
		Ref:        "AB12CD34",
		CustomerID: uuid.New(),
		StaffID:    uuid.New(),
		ServiceID:  uuid.New(),
		VendorID:   uuid.New(),
		Date:       "2026-09-14",
		StartTime:  "10:00",
		Status:     "pending",
	}
}

func (b *BookingViewBuilder) With(mutate func(*BookingViewBuilder)) *BookingViewBuilder {
	mutate(b)
	return b
}

func (b *BookingViewBuilder) Build() *queries.BookingView {
	now := time.Now().UTC()
	return &queries.BookingView{
		Ref:           b.Ref,
		CustomerID:    b.CustomerID,
		StaffID:       b.StaffID,
		StaffName:     "Alex Kim",
		ServiceID:     b.ServiceID,
		ServiceName:   "Deep Tissue Massage",
		VendorID:      b.VendorID,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       "11:00",
		DurationMin:   60,
		PriceCents:    8000,
		Currency:      "USD",
		Status:        b.Status,
		PaymentStatus: "unpaid",
		History: []queries.HistoryEntryView{
			{Status: "pending", ChangedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingViewBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		Ref:         b.Ref,
		StaffID:     b.StaffID,
		StaffName:   "Alex Kim",
		ServiceName: "Deep Tissue Massage",
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     "11:00",
		Status:      b.Status,
		PriceCents:  8000,
		Currency:    "USD",
		CreatedAt:   time.Now().UTC(),
	}
}
