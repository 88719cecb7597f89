package response

import (
	"log/slog"
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HistoryEntryResponse struct {
	Status    string     `json:"status"`
	Note      *string    `json:"note,omitempty"`
	ChangedBy *uuid.UUID `json:"changedBy,omitempty"`
	ChangedAt time.Time  `json:"changedAt"`
}

type BookingResponse struct {
	Ref           string                 `json:"ref"`
	CustomerID    uuid.UUID              `json:"customerId"`
	StaffID       uuid.UUID              `json:"staffId"`
	StaffName     string                 `json:"staffName"`
	ServiceID     uuid.UUID              `json:"serviceId"`
	ServiceName   string                 `json:"serviceName"`
	VendorID      uuid.UUID              `json:"vendorId"`
	Date          string                 `json:"date"`
	StartTime     string                 `json:"startTime"`
	EndTime       string                 `json:"endTime"`
	DurationMin   int                    `json:"durationMin"`
	PriceCents    int64                  `json:"priceCents"`
	Currency      string                 `json:"currency"`
	Status        string                 `json:"status"`
	PaymentStatus string                 `json:"paymentStatus"`
	Notes         *string                `json:"notes,omitempty"`
	History       []HistoryEntryResponse `json:"history"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type BookingListItemResponse struct {
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

type BookingListResponse struct {
	Items []BookingListItemResponse `json:"items"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
	Total int64                     `json:"total"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map booking view", "error", err.Error())
	}
	if resp.History == nil {
		resp.History = []HistoryEntryResponse{}
	}
	return &resp
}

func FromBookingList(items []*queries.BookingListItem, page *queries.PageResult) *BookingListResponse {
	mapped := make([]BookingListItemResponse, 0, len(items))
	for _, item := range items {
		var resp BookingListItemResponse
		if err := copier.Copy(&resp, item); err != nil {
			slog.Error("failed to map booking list item", "error", err.Error())
			continue
		}
		mapped = append(mapped, resp)
	}
	return &BookingListResponse{
		Items: mapped,
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
	}
}
