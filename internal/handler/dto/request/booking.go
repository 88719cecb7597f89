package request

import (
	"strings"

	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	StaffID   uuid.UUID `json:"staff_id" binding:"required"`
	Date      string    `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string    `json:"start_time" binding:"required"`
	Notes     *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToParams() commands.ReserveParams {
	return commands.ReserveParams{
		ServiceID: r.ServiceID,
		StaffID:   r.StaffID,
		Date:      r.Date,
		StartTime: r.StartTime,
		Notes:     trimmed(r.Notes),
	}
}

type TransitionBookingRequest struct {
	Status string  `json:"status" binding:"required"`
	Note   *string `json:"note,omitempty"`
}

func (r TransitionBookingRequest) GetNote() *string {
	return trimmed(r.Note)
}

type ListBookingsQuery struct {
	Status *string `form:"status"`
	Page   int     `form:"page,default=1"`
	Limit  int     `form:"limit"`
}

type VendorBookingsQuery struct {
	Date    *string    `form:"date"`
	StaffID *uuid.UUID `form:"staff_id"`
	Status  *string    `form:"status"`
	Page    int        `form:"page,default=1"`
	Limit   int        `form:"limit"`
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
