package request

import "github.com/google/uuid"

type SlotsQuery struct {
	ServiceID uuid.UUID  `form:"service_id" binding:"required"`
	StaffID   *uuid.UUID `form:"staff_id"`
	Date      string     `form:"date" binding:"required"`
}
