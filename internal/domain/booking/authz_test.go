//go:build unit

package booking_test

import (
	"testing"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	customerID := uuid.New()
	vendorID := uuid.New()
	otherVendorID := uuid.New()
	facts := booking.BookingFacts{CustomerID: customerID, VendorID: vendorID}

	customer := identity.Actor{ID: customerID, Role: identity.RoleCustomer}
	otherCustomer := identity.Actor{ID: uuid.New(), Role: identity.RoleCustomer}
	vendor := identity.Actor{ID: uuid.New(), Role: identity.RoleVendor, VendorID: &vendorID}
	otherVendor := identity.Actor{ID: uuid.New(), Role: identity.RoleVendor, VendorID: &otherVendorID}
	admin := identity.Actor{ID: uuid.New(), Role: identity.RoleAdmin}

	allTargets := []booking.Status{
		booking.StatusConfirmed,
		booking.StatusInProgress,
		booking.StatusCompleted,
		booking.StatusCancelled,
		booking.StatusNoShow,
	}

	t.Run("admin may perform any transition", func(t *testing.T) {
		for _, target := range allTargets {
			assert.True(t, booking.CanTransition(admin, facts, target), string(target))
		}
	})

	t.Run("operating vendor may perform any transition", func(t *testing.T) {
		for _, target := range allTargets {
			assert.True(t, booking.CanTransition(vendor, facts, target), string(target))
		}
	})

	t.Run("vendor of another business may not", func(t *testing.T) {
		for _, target := range allTargets {
			assert.False(t, booking.CanTransition(otherVendor, facts, target), string(target))
		}
	})

	t.Run("owning customer may only cancel", func(t *testing.T) {
		assert.True(t, booking.CanTransition(customer, facts, booking.StatusCancelled))

		for _, target := range []booking.Status{
			booking.StatusConfirmed,
			booking.StatusInProgress,
			booking.StatusCompleted,
			booking.StatusNoShow,
		} {
			assert.False(t, booking.CanTransition(customer, facts, target), string(target))
		}
	})

	t.Run("unrelated customer may do nothing", func(t *testing.T) {
		for _, target := range allTargets {
			assert.False(t, booking.CanTransition(otherCustomer, facts, target), string(target))
		}
	})
}

func TestCanView(t *testing.T) {
	customerID := uuid.New()
	vendorID := uuid.New()
	otherVendorID := uuid.New()
	facts := booking.BookingFacts{CustomerID: customerID, VendorID: vendorID}

	assert.True(t, booking.CanView(identity.Actor{ID: customerID, Role: identity.RoleCustomer}, facts))
	assert.True(t, booking.CanView(identity.Actor{ID: uuid.New(), Role: identity.RoleVendor, VendorID: &vendorID}, facts))
	assert.True(t, booking.CanView(identity.Actor{ID: uuid.New(), Role: identity.RoleAdmin}, facts))

	assert.False(t, booking.CanView(identity.Actor{ID: uuid.New(), Role: identity.RoleCustomer}, facts))
	assert.False(t, booking.CanView(identity.Actor{ID: uuid.New(), Role: identity.RoleVendor, VendorID: &otherVendorID}, facts))
	assert.False(t, booking.CanView(identity.Actor{ID: uuid.New(), Role: identity.RoleVendor}, facts))
}
