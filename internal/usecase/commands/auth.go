package commands

import (
	"context"

	"slotbook/internal/domain/identity"
	"slotbook/internal/infra"
	"slotbook/internal/infra/repository"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user is inactive")
)

type LoginResult struct {
	Token    string
	UserID   uuid.UUID
	Role     identity.Role
	VendorID *uuid.UUID
}

type UserRepository interface {
	FindByEmail(ctx context.Context, tenantID, email string) (*repository.UserRecord, error)
}

type AuthCommands interface {
	Login(ctx context.Context, tenantID, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	users      UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(users UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, tenantID, email, plainPassword string) (*LoginResult, error) {
	user, err := a.users.FindByEmail(ctx, tenantID, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same failure as a bad password so probes learn nothing.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := identity.NewRole(user.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(user.ID, role, user.VendorID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{
		Token:    token,
		UserID:   user.ID,
		Role:     role,
		VendorID: user.VendorID,
	}, nil
}
