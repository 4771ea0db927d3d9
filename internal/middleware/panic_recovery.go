package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"creditnext/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PanicRecovery is a middleware that recovers from panics and returns a standardized error response
func PanicRecovery(log *zap.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					log.Error("Panic recovered",
						zap.String("trace_id", traceID),
						zap.String("panic", fmt.Sprintf("%v", r)),
						zap.String("stack_trace", string(debug.Stack())),
						zap.String("path", c.Request().URL.Path),
						zap.String("method", c.Request().Method),
					)

					errorResponse := errors.NewErrorResponse(
						errors.SystemInternalError,
						traceID,
					)

					if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
						log.Error("Failed to send panic recovery response",
							zap.String("trace_id", traceID),
							zap.Error(err),
						)
					}
				}
			}()

			return next(c)
		}
	}
}
