package usecase

import (
	"slotbook/internal/domain/identity"
	"slotbook/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into an Actor for middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (identity.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (identity.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return identity.Actor{}, err
	}

	role, err := identity.NewRole(claims.Role)
	if err != nil {
		return identity.Actor{}, err
	}

	return identity.Actor{
		ID:       claims.UserID,
		Role:     role,
		VendorID: claims.VendorID,
	}, nil
}
