//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/usecase/queries"
	commonhttp "slotbook/tests/common/httptest"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotsHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.SlotsHandler
}

func (s *SlotsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewSlotsHandler(s.mockAvailability)

	s.router.Use(func(c *gin.Context) {
		if tenantID := c.GetHeader("X-Tenant-ID"); tenantID != "" {
			c.Set("tenant_id", tenantID)
		}
	})
	s.router.GET("/slots", s.handler.GetSlots)
}

func (s *SlotsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotsHandlerTestSuite))
}

func (s *SlotsHandlerTestSuite) TestGetSlots() {
	serviceID := uuid.New()
	staffID := uuid.New()
	url := fmt.Sprintf("/slots?service_id=%s&date=2026-09-14", serviceID)

	s.Run("success: returns slots per staff", func() {
		view := &queries.SlotsView{
			ServiceID:   serviceID,
			Date:        "2026-09-14",
			DurationMin: 60,
			StepMin:     30,
			Staff: []queries.StaffSlots{
				{StaffID: staffID, StaffName: "Alex Kim", Slots: []string{"09:00", "09:30"}},
			},
		}
		s.mockAvailability.EXPECT().
			GetSlots(gomock.Any(), testTenant, serviceID, gomock.Nil(), "2026-09-14").
			Return(view, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testTenant, "")

		var resp resdto.SlotsResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(serviceID, resp.ServiceID)
		s.Require().Len(resp.Staff, 1)
		s.Equal([]string{"09:00", "09:30"}, resp.Staff[0].Slots)
	})

	s.Run("success: forwards the staff filter", func() {
		filtered := fmt.Sprintf("/slots?service_id=%s&staff_id=%s&date=2026-09-14", serviceID, staffID)
		s.mockAvailability.EXPECT().
			GetSlots(gomock.Any(), testTenant, serviceID, &staffID, "2026-09-14").
			Return(&queries.SlotsView{ServiceID: serviceID, Date: "2026-09-14", Staff: []queries.StaffSlots{}}, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, filtered, nil, testTenant, "")
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 without tenant header", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "", "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Tenant")
	})

	s.Run("error: 400 without service_id", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=2026-09-14", nil, testTenant, "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: query failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"invalid date", queries.ErrInvalidDate, http.StatusBadRequest},
			{"service not found", queries.ErrServiceNotFound, http.StatusNotFound},
			{"staff not qualified", queries.ErrStaffNotQualified, http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().
					GetSlots(gomock.Any(), testTenant, serviceID, gomock.Nil(), "2026-09-14").
					Return(nil, tc.err)

				rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testTenant, "")
				commonhttp.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}
