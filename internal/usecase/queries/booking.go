package queries

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/identity"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrForbidden       = errs.New("actor may not view this booking")
)

// Read models (DTO for read side)

type HistoryEntryView struct {
	Status    string     `json:"status"`
	Note      *string    `json:"note,omitempty"`
	ChangedBy *uuid.UUID `json:"changedBy,omitempty"`
	ChangedAt time.Time  `json:"changedAt"`
}

type BookingView struct {
	Ref           string             `json:"ref"`
	CustomerID    uuid.UUID          `json:"customerId"`
	StaffID       uuid.UUID          `json:"staffId"`
	StaffName     string             `json:"staffName"`
	ServiceID     uuid.UUID          `json:"serviceId"`
	ServiceName   string             `json:"serviceName"`
	VendorID      uuid.UUID          `json:"vendorId"`
	Date          string             `json:"date"`
	StartTime     string             `json:"startTime"`
	EndTime       string             `json:"endTime"`
	DurationMin   int                `json:"durationMin"`
	PriceCents    int64              `json:"priceCents"`
	Currency      string             `json:"currency"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"paymentStatus"`
	Notes         *string            `json:"notes,omitempty"`
	History       []HistoryEntryView `json:"history"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type BookingListItem struct {
	Ref         string    `json:"ref"`
	StaffID     uuid.UUID `json:"staffId"`
	StaffName   string    `json:"staffName"`
	ServiceName string    `json:"serviceName"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"priceCents"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CustomerFilter struct {
	Status *string
}

type VendorFilter struct {
	Date    *string
	StaffID *uuid.UUID
	Status  *string
}

// PageRequest is classic page/limit pagination; limit is capped by the
// queries layer, page is 1-based.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Offset() int32 {
	return int32((p.Page - 1) * p.Limit)
}

type PageResult struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type BookingQueries interface {
	GetByRef(ctx context.Context, tenantID, ref string, actor identity.Actor) (*BookingView, error)
	ListByCustomer(ctx context.Context, tenantID string, customerID uuid.UUID, filter CustomerFilter, page PageRequest) ([]*BookingListItem, *PageResult, error)
	ListByVendor(ctx context.Context, tenantID string, vendorID uuid.UUID, filter VendorFilter, page PageRequest) ([]*BookingListItem, *PageResult, error)
}

type BookingReadStore interface {
	FindByRef(ctx context.Context, tenantID, ref string) (*BookingView, error)
	FindByCustomer(ctx context.Context, tenantID string, customerID uuid.UUID, filter CustomerFilter, limit, offset int32) ([]*BookingListItem, int64, error)
	FindByVendor(ctx context.Context, tenantID string, vendorID uuid.UUID, filter VendorFilter, limit, offset int32) ([]*BookingListItem, int64, error)
}

type bookingQueriesImpl struct {
	store           BookingReadStore
	defaultPageSize int
	maxPageSize     int
}

func NewBookingQueries(store BookingReadStore, defaultPageSize, maxPageSize int) BookingQueries {
	return &bookingQueriesImpl{
		store:           store,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

func (q *bookingQueriesImpl) GetByRef(ctx context.Context, tenantID, ref string, actor identity.Actor) (*BookingView, error) {
	view, err := q.store.FindByRef(ctx, tenantID, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	facts := booking.BookingFacts{CustomerID: view.CustomerID, VendorID: view.VendorID}
	if !booking.CanView(actor, facts) {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, tenantID string, customerID uuid.UUID, filter CustomerFilter, page PageRequest) ([]*BookingListItem, *PageResult, error) {
	page = q.clampPage(page)

	items, total, err := q.store.FindByCustomer(ctx, tenantID, customerID, filter, int32(page.Limit), page.Offset())
	if err != nil {
		return nil, nil, err
	}
	return items, &PageResult{Page: page.Page, Limit: page.Limit, Total: total}, nil
}

func (q *bookingQueriesImpl) ListByVendor(ctx context.Context, tenantID string, vendorID uuid.UUID, filter VendorFilter, page PageRequest) ([]*BookingListItem, *PageResult, error) {
	page = q.clampPage(page)

	items, total, err := q.store.FindByVendor(ctx, tenantID, vendorID, filter, int32(page.Limit), page.Offset())
	if err != nil {
		return nil, nil, err
	}
	return items, &PageResult{Page: page.Page, Limit: page.Limit, Total: total}, nil
}

func (q *bookingQueriesImpl) clampPage(page PageRequest) PageRequest {
	if page.Page <= 0 {
		page.Page = 1
	}
	if page.Limit <= 0 {
		page.Limit = q.defaultPageSize
	}
	if page.Limit > q.maxPageSize {
		page.Limit = q.maxPageSize
	}
	return page
}
