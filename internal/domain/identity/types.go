package identity

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor is the authenticated principal a request runs as. VendorID is set
// for vendor-role users and ties them to the business they operate.
type Actor struct {
	ID       uuid.UUID
	Role     Role
	VendorID *uuid.UUID
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) OperatesVendor(vendorID uuid.UUID) bool {
	return a.Role == RoleVendor && a.VendorID != nil && *a.VendorID == vendorID
}
