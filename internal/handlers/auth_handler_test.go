package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"creditnext/internal/dto"
	"creditnext/internal/handlers"
	"creditnext/internal/services"
	"creditnext/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	auth *service_mocks.MockAuthServiceInterface
	e    *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.auth = service_mocks.NewMockAuthServiceInterface(s.ctrl)

	h := handlers.NewAuthHandler(s.auth)
	s.e = newTestEcho()
	s.e.POST("/api/v1/auth/token", h.Token)
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) TestToken_Success() {
	expires := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.auth.EXPECT().Login(gomock.Any(), "operator", "correct horse battery").Return("signed.jwt.token", expires, nil)

	rec := doJSON(s.e, http.MethodPost, "/api/v1/auth/token", dto.TokenRequest{
		Username: "operator",
		Password: "correct horse battery",
	})

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp dto.TokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("signed.jwt.token", resp.AccessToken)
	s.Equal("Bearer", resp.TokenType)
	s.True(expires.Equal(resp.ExpiresAt))
}

func (s *AuthHandlerSuite) TestToken_Errors() {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_005"},
		{"login disabled", services.ErrOperatorDisabled, http.StatusServiceUnavailable, "AUTH_006"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.auth.EXPECT().Login(gomock.Any(), "operator", "wrong").Return("", time.Time{}, tt.err)

			rec := doJSON(s.e, http.MethodPost, "/api/v1/auth/token", dto.TokenRequest{Username: "operator", Password: "wrong"})

			s.Equal(tt.status, rec.Code)
			s.Equal(tt.code, decodeError(s.T(), rec).Error.Code)
		})
	}
}

func (s *AuthHandlerSuite) TestToken_Validation() {
	tests := []struct {
		name string
		req  dto.TokenRequest
	}{
		{"missing username", dto.TokenRequest{Password: "secret"}},
		{"missing password", dto.TokenRequest{Username: "operator"}},
		{"password beyond bcrypt limit", dto.TokenRequest{Username: "operator", Password: strings.Repeat("p", 73)}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := doJSON(s.e, http.MethodPost, "/api/v1/auth/token", tt.req)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_001", decodeError(s.T(), rec).Error.Code)
		})
	}
}
