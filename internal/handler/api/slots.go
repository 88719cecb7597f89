package api

import (
	"errors"
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotsHandler struct {
	availability queries.AvailabilityQueries
}

func NewSlotsHandler(availability queries.AvailabilityQueries) *SlotsHandler {
	return &SlotsHandler{
		availability: availability,
	}
}

// @Summary List available slots
// @Description Compute bookable start times for a service on a date, per staff member
// @Tags slots
// @Produce json
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param service_id query string true "Service ID"
// @Param staff_id query string false "Restrict to one staff member"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope{data=response.SlotsResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /slots [get]
func (h *SlotsHandler) GetSlots(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("tenant missing from context"), "Tenant header required")
		return
	}

	var query reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	view, err := h.availability.GetSlots(c.Request.Context(), tenantID, query.ServiceID, query.StaffID, query.Date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format")
		case errors.Is(err, queries.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found")
		case errors.Is(err, queries.ErrStaffNotQualified):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Staff not available for this service")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewSuccess(resdto.FromSlotsView(view)))
}
