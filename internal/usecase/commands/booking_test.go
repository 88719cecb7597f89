//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/tests/common/builder"
	commandsmock "slotbook/tests/mock/commands"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testTenant = "tenant-1"
	// 2026-09-14 is a Monday; the mock clock sits well before it.
	testDate = "2026-09-14"
)

// The reservation persistence path runs inside a real pgx transaction and
// is covered by the e2e suite; these tests pin down the precondition
// checks, which all run before the pool is ever touched.
type ReserveTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRepo    *commandsmock.MockBookingRepository
	mockCatalog *queriesmock.MockCatalogReader
	mockBusy    *queriesmock.MockBusyIntervalSource
	mockStore   *queriesmock.MockBookingReadStore
	mockCache   *commandsmock.MockSlotInvalidator
	clock       *clock.MockClock
	commands    commands.BookingCommands
}

func (s *ReserveTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogReader(s.mockCtrl)
	s.mockBusy = queriesmock.NewMockBusyIntervalSource(s.mockCtrl)
	s.mockStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.mockCache = commandsmock.NewMockSlotInvalidator(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	s.commands = commands.NewBookingCommands(
		s.mockRepo, s.mockCatalog, s.mockBusy, s.mockStore, s.mockCache,
		nil, s.clock, time.UTC, 30,
	)
}

func (s *ReserveTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReserveSuite(t *testing.T) {
	suite.Run(t, new(ReserveTestSuite))
}

func (s *ReserveTestSuite) validParams() commands.ReserveParams {
	return commands.ReserveParams{
		ServiceID: uuid.New(),
		StaffID:   uuid.New(),
		Date:      testDate,
		StartTime: "10:00",
	}
}

func (s *ReserveTestSuite) TestReservePreconditions() {
	ctx := context.Background()
	customerID := uuid.New()

	s.Run("error: malformed date", func() {
		p := s.validParams()
		p.Date = "14/09/2026"
		_, err := s.commands.Reserve(ctx, testTenant, customerID, p)
		s.ErrorIs(err, commands.ErrInvalidClock)
	})

	s.Run("error: malformed start time", func() {
		p := s.validParams()
		p.StartTime = "10am"
		_, err := s.commands.Reserve(ctx, testTenant, customerID, p)
		s.ErrorIs(err, commands.ErrInvalidClock)
	})

	s.Run("error: start in the past", func() {
		p := s.validParams()
		p.Date = "2026-08-01"
		_, err := s.commands.Reserve(ctx, testTenant, customerID, p)
		s.ErrorIs(err, commands.ErrPastBooking)
	})

	s.Run("error: start exactly now is rejected", func() {
		p := s.validParams()
		p.Date = "2026-09-01"
		p.StartTime = "10:00"
		_, err := s.commands.Reserve(ctx, testTenant, customerID, p)
		s.ErrorIs(err, commands.ErrPastBooking)
	})

	s.Run("error: unknown service", func() {
		p := s.validParams()
		s.mockCatalog.EXPECT().FindService(gomock.Any(), testTenant, p.ServiceID).
			Return(nil, infra.WrapRepoErr("service not found", errs.New("no rows"), infra.KindNotFound))

		_, err := s.commands.Reserve(ctx, testTenant, customerID, p)
		s.ErrorIs(err, commands.ErrServiceNotFound)
	})

	s.Run("error: inactive service", func() {
		p := s.validParams()
		svc := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) {
			b.ID = p.ServiceID
			b.IsActive = false
		}).Build()
		s.mockCatalog.EXPECT().FindService(gomock.Any(), testTenant, p.ServiceID).Return(svc, nil)

		_, err := s.commands.Reserve(ctx, testTenant, customerID, p)
		s.ErrorIs(err, commands.ErrServiceNotFound)
	})

	s.Run("error: staff not assigned to service", func() {
		p := s.validParams()
		svc := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) { b.ID = p.ServiceID }).Build()
		s.mockCatalog.EXPECT().FindService(gomock.Any(), testTenant, p.ServiceID).Return(svc, nil)

		_, err := s.commands.Reserve(ctx, testTenant, customerID, p)
		s.ErrorIs(err, commands.ErrStaffNotQualified)
	})

	s.Run("error: requested slot not in the availability sweep", func() {
		p := s.validParams()
		staff := builder.NewStaffBuilder().With(func(b *builder.StaffBuilder) { b.ID = p.StaffID }).Build()
		svc := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) { b.ID = p.ServiceID }).
			WithStaff(p.StaffID).Build()

		s.mockCatalog.EXPECT().FindService(gomock.Any(), testTenant, p.ServiceID).Return(svc, nil)
		s.mockCatalog.EXPECT().FindStaff(gomock.Any(), testTenant, p.StaffID).Return(staff, nil)
		// Another booking already holds 10:00-11:00.
		s.mockBusy.EXPECT().BusyIntervals(gomock.Any(), testTenant, p.StaffID, testDate).
			Return(busyTenToEleven(), nil)

		_, err := s.commands.Reserve(ctx, testTenant, customerID, p)
		s.ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("error: slot on a blocked date", func() {
		p := s.validParams()
		staff := builder.NewStaffBuilder().With(func(b *builder.StaffBuilder) { b.ID = p.StaffID }).
			WithBlockedDate(testDate).Build()
		svc := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) { b.ID = p.ServiceID }).
			WithStaff(p.StaffID).Build()

		s.mockCatalog.EXPECT().FindService(gomock.Any(), testTenant, p.ServiceID).Return(svc, nil)
		s.mockCatalog.EXPECT().FindStaff(gomock.Any(), testTenant, p.StaffID).Return(staff, nil)
		s.mockBusy.EXPECT().BusyIntervals(gomock.Any(), testTenant, p.StaffID, testDate).Return(nil, nil)

		_, err := s.commands.Reserve(ctx, testTenant, customerID, p)
		s.ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("error: slot during the lunch break", func() {
		p := s.validParams()
		p.StartTime = "12:30"
		staff := builder.NewStaffBuilder().With(func(b *builder.StaffBuilder) { b.ID = p.StaffID }).Build()
		svc := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) { b.ID = p.ServiceID }).
			WithStaff(p.StaffID).Build()

		s.mockCatalog.EXPECT().FindService(gomock.Any(), testTenant, p.ServiceID).Return(svc, nil)
		s.mockCatalog.EXPECT().FindStaff(gomock.Any(), testTenant, p.StaffID).Return(staff, nil)
		s.mockBusy.EXPECT().BusyIntervals(gomock.Any(), testTenant, p.StaffID, testDate).Return(nil, nil)

		_, err := s.commands.Reserve(ctx, testTenant, customerID, p)
		s.ErrorIs(err, commands.ErrSlotUnavailable)
	})
}

func (s *ReserveTestSuite) TestTransitionPreconditions() {
	ctx := context.Background()

	s.Run("error: unknown target status", func() {
		_, err := s.commands.Transition(ctx, testTenant, "AB12CD34",
			adminActor(), "archived", nil)
		s.ErrorIs(err, commands.ErrInvalidStatus)
	})

	s.Run("error: pending is not a transition target", func() {
		_, err := s.commands.Transition(ctx, testTenant, "AB12CD34",
			adminActor(), "pending", nil)
		s.ErrorIs(err, commands.ErrInvalidStatus)
	})
}
