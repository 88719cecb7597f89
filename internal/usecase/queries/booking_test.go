//go:build unit

package queries_test

import (
	"context"
	"testing"

	"slotbook/internal/domain/identity"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/builder"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockBookingReadStore
	queries   queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.queries = queries.NewBookingQueries(s.mockStore, 20, 100)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestGetByRef() {
	ctx := context.Background()

	s.Run("success: owning customer", func() {
		view := builder.NewBookingViewBuilder().Build()
		actor := identity.Actor{ID: view.CustomerID, Role: identity.RoleCustomer}
		s.mockStore.EXPECT().FindByRef(gomock.Any(), testTenant, view.Ref).Return(view, nil)

		got, err := s.queries.GetByRef(ctx, testTenant, view.Ref, actor)
		s.Require().NoError(err)
		s.Equal(view.Ref, got.Ref)
	})

	s.Run("success: operating vendor", func() {
		view := builder.NewBookingViewBuilder().Build()
		actor := identity.Actor{ID: uuid.New(), Role: identity.RoleVendor, VendorID: &view.VendorID}
		s.mockStore.EXPECT().FindByRef(gomock.Any(), testTenant, view.Ref).Return(view, nil)

		_, err := s.queries.GetByRef(ctx, testTenant, view.Ref, actor)
		s.NoError(err)
	})

	s.Run("error: unrelated customer is forbidden", func() {
		view := builder.NewBookingViewBuilder().Build()
		actor := identity.Actor{ID: uuid.New(), Role: identity.RoleCustomer}
		s.mockStore.EXPECT().FindByRef(gomock.Any(), testTenant, view.Ref).Return(view, nil)

		_, err := s.queries.GetByRef(ctx, testTenant, view.Ref, actor)
		s.ErrorIs(err, queries.ErrForbidden)
	})

	s.Run("error: unknown ref", func() {
		actor := identity.Actor{ID: uuid.New(), Role: identity.RoleCustomer}
		s.mockStore.EXPECT().FindByRef(gomock.Any(), testTenant, "ZZZZZZZZ").
			Return(nil, infra.WrapRepoErr("booking not found", errs.New("no rows"), infra.KindNotFound))

		_, err := s.queries.GetByRef(ctx, testTenant, "ZZZZZZZZ", actor)
		s.ErrorIs(err, queries.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListByCustomer() {
	ctx := context.Background()
	customerID := uuid.New()
	item := builder.NewBookingViewBuilder().BuildListItem()

	s.Run("defaults applied for zero paging", func() {
		s.mockStore.EXPECT().
			FindByCustomer(gomock.Any(), testTenant, customerID, queries.CustomerFilter{}, int32(20), int32(0)).
			Return([]*queries.BookingListItem{item}, int64(1), nil)

		items, page, err := s.queries.ListByCustomer(ctx, testTenant, customerID, queries.CustomerFilter{}, queries.PageRequest{})
		s.Require().NoError(err)
		s.Len(items, 1)
		s.Equal(1, page.Page)
		s.Equal(20, page.Limit)
		s.Equal(int64(1), page.Total)
	})

	s.Run("limit capped at maximum", func() {
		s.mockStore.EXPECT().
			FindByCustomer(gomock.Any(), testTenant, customerID, queries.CustomerFilter{}, int32(100), int32(100)).
			Return(nil, int64(0), nil)

		_, page, err := s.queries.ListByCustomer(ctx, testTenant, customerID, queries.CustomerFilter{},
			queries.PageRequest{Page: 2, Limit: 500})
		s.Require().NoError(err)
		s.Equal(100, page.Limit)
	})

	s.Run("offset derives from page and limit", func() {
		s.mockStore.EXPECT().
			FindByCustomer(gomock.Any(), testTenant, customerID, queries.CustomerFilter{}, int32(10), int32(20)).
			Return(nil, int64(0), nil)

		_, _, err := s.queries.ListByCustomer(ctx, testTenant, customerID, queries.CustomerFilter{},
			queries.PageRequest{Page: 3, Limit: 10})
		s.NoError(err)
	})
}

func (s *BookingQueriesTestSuite) TestListByVendor() {
	ctx := context.Background()
	vendorID := uuid.New()
	status := "confirmed"
	filter := queries.VendorFilter{Status: &status}

	s.mockStore.EXPECT().
		FindByVendor(gomock.Any(), testTenant, vendorID, filter, int32(20), int32(0)).
		Return([]*queries.BookingListItem{}, int64(0), nil)

	items, page, err := s.queries.ListByVendor(ctx, testTenant, vendorID, filter, queries.PageRequest{Page: 1})
	s.Require().NoError(err)
	s.Empty(items)
	s.Equal(int64(0), page.Total)
}
