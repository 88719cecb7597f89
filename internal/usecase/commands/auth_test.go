//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/infra/repository"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/pkg/password"
	"slotbook/internal/usecase/commands"
	commandsmock "slotbook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockUsers *commandsmock.MockUserRepository
	commands  commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = commandsmock.NewMockUserRepository(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", time.Hour)
	s.commands = commands.NewAuthCommands(s.mockUsers, jwtService)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) activeUser(plain string) *repository.UserRecord {
	hash, err := password.Hash(plain)
	s.Require().NoError(err)
	vendorID := uuid.New()
	return &repository.UserRecord{
		ID:           uuid.New(),
		TenantID:     testTenant,
		Email:        "owner@example.com",
		PasswordHash: hash,
		Role:         "vendor",
		VendorID:     &vendorID,
		IsActive:     true,
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("success: issues a token carrying role and vendor", func() {
		user := s.activeUser("correct-horse")
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), testTenant, user.Email).Return(user, nil)

		result, err := s.commands.Login(ctx, testTenant, user.Email, "correct-horse")
		s.Require().NoError(err)
		s.NotEmpty(result.Token)
		s.Equal(user.ID, result.UserID)
		s.Equal("vendor", string(result.Role))
		s.Require().NotNil(result.VendorID)
		s.Equal(*user.VendorID, *result.VendorID)
	})

	s.Run("error: unknown email looks like a bad password", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), testTenant, "ghost@example.com").
			Return(nil, infra.WrapRepoErr("user not found", errs.New("no rows"), infra.KindNotFound))

		_, err := s.commands.Login(ctx, testTenant, "ghost@example.com", "whatever")
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: wrong password", func() {
		user := s.activeUser("correct-horse")
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), testTenant, user.Email).Return(user, nil)

		_, err := s.commands.Login(ctx, testTenant, user.Email, "battery-staple")
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: inactive user", func() {
		user := s.activeUser("correct-horse")
		user.IsActive = false
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), testTenant, user.Email).Return(user, nil)

		_, err := s.commands.Login(ctx, testTenant, user.Email, "correct-horse")
		s.ErrorIs(err, commands.ErrUserInactive)
	})
}
