package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"creditnext/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
	logs *observer.ObservedLogs
	mw   echo.MiddlewareFunc
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	core, logs := observer.New(zap.DebugLevel)
	s.logs = logs
	s.mw = PanicRecovery(zap.New(core))
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoverFromPanic() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := s.mw(func(c echo.Context) error {
		panic("test panic")
	})

	s.NotPanics(func() {
		_ = handler(c)
	})

	s.Equal(http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)

	entries := s.logs.FilterMessage("Panic recovered").All()
	s.Require().Len(entries, 1)
	s.Equal("test panic", entries[0].ContextMap()["panic"])
	s.NotEmpty(entries[0].ContextMap()["stack_trace"])
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoTraceID() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	_ = s.mw(func(c echo.Context) error {
		panic(42)
	})(c)

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("unknown", errorResponse.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoPanic() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := s.mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(0, s.logs.Len())
}
