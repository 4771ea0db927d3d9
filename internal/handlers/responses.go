package handlers

import (
	"net/http"

	"creditnext/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (client and domain errors) or
// SendSystemError (anything that must not leak internals). Validation errors
// from c.Validate are returned as-is for the HTTP error handler to format.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok || traceID == "" {
		return "unknown"
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendDatabaseError answers with SYSTEM_002 and logs the storage failure
func SendDatabaseError(c echo.Context, err error) error {
	errorResponse, cause := errors.WrapDatabaseError(err, getTraceID(c))
	c.Logger().Errorf("trace_id=%s storage error: %v", errorResponse.Error.TraceID, cause)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError answers with a generic SYSTEM_001 and hands the cause to the logger
func SendSystemError(c echo.Context, err error) error {
	errorResponse, cause := errors.WrapSystemError(err, getTraceID(c))
	c.Logger().Errorf("trace_id=%s internal error: %v", errorResponse.Error.TraceID, cause)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
