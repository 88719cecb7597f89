package response

import (
	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	UserID      uuid.UUID  `json:"userId"`
	Role        string     `json:"role"`
	VendorID    *uuid.UUID `json:"vendorId,omitempty"`
}

type MeResponse struct {
	UserID   uuid.UUID  `json:"userId"`
	Role     string     `json:"role"`
	VendorID *uuid.UUID `json:"vendorId,omitempty"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: result.Token,
		UserID:      result.UserID,
		Role:        string(result.Role),
		VendorID:    result.VendorID,
	}
}
