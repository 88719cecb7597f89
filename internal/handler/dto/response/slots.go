package response

import (
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffSlotsResponse struct {
	StaffID   uuid.UUID `json:"staffId"`
	StaffName string    `json:"staffName"`
	Slots     []string  `json:"slots"`
}

type SlotsResponse struct {
	ServiceID   uuid.UUID            `json:"serviceId"`
	Date        string               `json:"date"`
	DurationMin int                  `json:"durationMin"`
	StepMin     int                  `json:"stepMin"`
	Staff       []StaffSlotsResponse `json:"staff"`
}

func FromSlotsView(view *queries.SlotsView) *SlotsResponse {
	staff := make([]StaffSlotsResponse, len(view.Staff))
	for i, s := range view.Staff {
		slots := s.Slots
		if slots == nil {
			slots = []string{}
		}
		staff[i] = StaffSlotsResponse{StaffID: s.StaffID, StaffName: s.StaffName, Slots: slots}
	}
	return &SlotsResponse{
		ServiceID:   view.ServiceID,
		Date:        view.Date,
		DurationMin: view.DurationMin,
		StepMin:     view.StepMin,
		Staff:       staff,
	}
}
