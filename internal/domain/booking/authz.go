package booking

import (
	"slotbook/internal/domain/identity"

	"github.com/google/uuid"
)

// BookingFacts is the slice of a booking the authorization rules need.
// Keeping the decision a pure function of these facts makes the rule
// testable without building full entities.
type BookingFacts struct {
	CustomerID uuid.UUID
	VendorID   uuid.UUID
}

// CanTransition decides whether the actor may move the booking to target.
// The vendor running the business may perform any transition; a customer may
// only self-cancel, never move a booking forward; admins may do anything.
func CanTransition(actor identity.Actor, facts BookingFacts, target Status) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.OperatesVendor(facts.VendorID) {
		return true
	}
	if actor.Role == identity.RoleCustomer && actor.ID == facts.CustomerID {
		return target == StatusCancelled
	}
	return false
}

// CanView decides whether the actor may read the booking: the owning
// customer, the operating vendor, or an admin.
func CanView(actor identity.Actor, facts BookingFacts) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.OperatesVendor(facts.VendorID) {
		return true
	}
	return actor.ID == facts.CustomerID
}
