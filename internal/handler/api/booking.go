package api

import (
	"errors"
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/metrics"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
	metrics  *metrics.BookingMetrics
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries, bookingMetrics *metrics.BookingMetrics) *BookingHandler {
	return &BookingHandler{
		commands: bookingCommands,
		queries:  bookingQueries,
		metrics:  bookingMetrics,
	}
}

// @Summary Create booking
// @Description Reserve a slot for the authenticated customer
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param request body request.CreateBookingRequest true "Booking request"
// @Success 201 {object} response.Envelope{data=response.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	tenantID, actor, ok := requestScope(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.Reserve(c.Request.Context(), tenantID, actor.ID, req.ToParams())
	if err != nil {
		h.metrics.ObserveReservation(reserveOutcome(err))
		switch {
		case errors.Is(err, commands.ErrInvalidClock):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or time format")
		case errors.Is(err, commands.ErrPastBooking):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking must start in the future")
		case errors.Is(err, commands.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found")
		case errors.Is(err, commands.ErrStaffNotQualified):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Staff not available for this service")
		case errors.Is(err, commands.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Requested slot is no longer available")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	h.metrics.ObserveReservation("created")
	c.JSON(http.StatusCreated, resdto.NewSuccess(resdto.FromBookingView(view)))
}

// @Summary Get booking by reference
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param ref path string true "Booking reference"
// @Success 200 {object} response.Envelope{data=response.BookingResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{ref} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	tenantID, actor, ok := requestScope(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByRef(c.Request.Context(), tenantID, c.Param("ref"), actor)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, queries.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to view this booking")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewSuccess(resdto.FromBookingView(view)))
}

// @Summary Update booking status
// @Description Move a booking through its lifecycle
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param ref path string true "Booking reference"
// @Param request body request.TransitionBookingRequest true "Target status"
// @Success 200 {object} response.Envelope{data=response.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{ref}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	tenantID, actor, ok := requestScope(c)
	if !ok {
		return
	}

	var req reqdto.TransitionBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.Transition(c.Request.Context(), tenantID, c.Param("ref"), actor, req.Status, req.GetNote())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status transition")
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to perform this transition")
		case errors.Is(err, commands.ErrTerminalStatus):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already in a terminal status")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	h.metrics.ObserveTransition(view.Status)
	c.JSON(http.StatusOK, resdto.NewSuccess(resdto.FromBookingView(view)))
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param status query string false "Filter by status"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=response.BookingListResponse}
// @Router /bookings/mine [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	tenantID, actor, ok := requestScope(c)
	if !ok {
		return
	}

	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	items, page, err := h.queries.ListByCustomer(
		c.Request.Context(), tenantID, actor.ID,
		queries.CustomerFilter{Status: query.Status},
		queries.PageRequest{Page: query.Page, Limit: query.Limit},
	)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.NewSuccess(resdto.FromBookingList(items, page)))
}

// @Summary List vendor bookings
// @Description List bookings for the vendor the actor operates; admins pass any vendor via staff filters
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param staff_id query string false "Filter by staff member"
// @Param status query string false "Filter by status"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=response.BookingListResponse}
// @Failure 403 {object} httperr.Response
// @Router /bookings/vendor [get]
func (h *BookingHandler) ListVendorBookings(c *gin.Context) {
	tenantID, actor, ok := requestScope(c)
	if !ok {
		return
	}

	if actor.VendorID == nil {
		httperr.AbortWithError(c, http.StatusForbidden, errs.New("actor has no vendor"), "Not associated with a vendor")
		return
	}

	var query reqdto.VendorBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	items, page, err := h.queries.ListByVendor(
		c.Request.Context(), tenantID, *actor.VendorID,
		queries.VendorFilter{Date: query.Date, StaffID: query.StaffID, Status: query.Status},
		queries.PageRequest{Page: query.Page, Limit: query.Limit},
	)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.NewSuccess(resdto.FromBookingList(items, page)))
}

func reserveOutcome(err error) string {
	switch {
	case errors.Is(err, commands.ErrSlotUnavailable):
		return "conflict"
	case errors.Is(err, commands.ErrPastBooking),
		errors.Is(err, commands.ErrInvalidClock),
		errors.Is(err, commands.ErrServiceNotFound),
		errors.Is(err, commands.ErrStaffNotQualified):
		return "rejected"
	default:
		return "error"
	}
}
