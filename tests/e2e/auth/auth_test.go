//go:build e2e

package auth_test

import (
	"context"
	"net/http"
	"testing"

	"slotbook/internal/handler/dto/request"
	"slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/password"
	"slotbook/tests/common/dbtest"
	commonhttp "slotbook/tests/common/httptest"
	"slotbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	meURL    = "/api/auth/me"

	inactiveEmail = "dormant@example.com"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	hash, err := password.Hash(dbtest.Password)
	require.NoError(s.T(), err)
	_, err = s.DB.Exec(context.Background(), `
		INSERT INTO users (id, tenant_id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, 'customer', false)`,
		uuid.New(), dbtest.TenantID, inactiveEmail, hash,
	)
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid customer credentials",
			email:          dbtest.CustomerEmail,
			password:       dbtest.Password,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid vendor credentials",
			email:          dbtest.VendorUserEmail,
			password:       dbtest.Password,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       dbtest.Password,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          dbtest.CustomerEmail,
			password:       "not-the-password",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
			email:          inactiveEmail,
			password:       dbtest.Password,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}, dbtest.TenantID, "")

			if tt.expectedStatus == http.StatusOK {
				var login response.LoginResponse
				commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &login)
				s.NotEmpty(login.AccessToken)
				s.NotEqual(uuid.Nil, login.UserID)
			} else {
				commonhttp.AssertErrorResponse(s.T(), w, tt.expectedStatus, "")
			}
		})
	}
}

func (s *authSuite) TestLoginScoping() {
	s.Run("missing tenant header", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    dbtest.CustomerEmail,
			Password: dbtest.Password,
		}, "", "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Tenant")
	})

	s.Run("credentials do not cross tenants", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    dbtest.CustomerEmail,
			Password: dbtest.Password,
		}, "some-other-tenant", "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated actor", func() {
		loginW := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    dbtest.VendorUserEmail,
			Password: dbtest.Password,
		}, dbtest.TenantID, "")

		var login response.LoginResponse
		commonhttp.AssertSuccessResponse(s.T(), loginW, http.StatusOK, &login)

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, dbtest.TenantID, login.AccessToken)

		var me response.MeResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal(s.Fixtures.OwnerID, me.UserID)
		s.Equal("vendor", me.Role)
		s.Require().NotNil(me.VendorID)
		s.Equal(s.Fixtures.VendorID, *me.VendorID)
	})

	s.Run("rejects missing token", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, dbtest.TenantID, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("rejects garbage token", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, dbtest.TenantID, "not-a-jwt")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}
