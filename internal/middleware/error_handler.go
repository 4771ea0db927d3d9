package middleware

import (
	"fmt"
	"net/http"

	"creditnext/internal/errors"
	"creditnext/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// HTTPErrorHandler formats errors returned by handlers as standardized error
// responses and logs them; 5xx at error level, everything else at warn
func HTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var errorResponse *errors.ErrorResponse
		var httpStatus int

		if echoErr, ok := err.(*echo.HTTPError); ok {
			errorResponse = errors.NewErrorResponse(
				mapHTTPStatusToErrorCode(echoErr.Code),
				traceID,
				errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
			)
			httpStatus = echoErr.Code
		} else if validationErrs, ok := err.(validator.ValidationErrors); ok {
			errorResponse = errors.NewValidationError(validation.FieldErrors(validationErrs), traceID)
			httpStatus = http.StatusBadRequest
		} else {
			errorResponse, _ = errors.WrapSystemError(err, traceID)
			httpStatus = errorResponse.GetHTTPStatus()
		}

		fields := []zap.Field{
			zap.String("trace_id", traceID),
			zap.String("error_code", errorResponse.Error.Code),
			zap.Int("status", httpStatus),
			zap.String("message", errorResponse.Error.Message),
			zap.String("path", c.Request().URL.Path),
			zap.String("method", c.Request().Method),
			zap.Error(err),
		}
		if httpStatus >= 500 {
			log.Error("HTTP error occurred", fields...)
		} else {
			log.Warn("HTTP error occurred", fields...)
		}

		apiErrorsTotal.WithLabelValues(
			errorResponse.Error.Code,
			c.Path(),
			fmt.Sprintf("%d", httpStatus),
		).Inc()

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			log.Error("Failed to send error response",
				zap.String("trace_id", traceID),
				zap.Error(sendErr),
			)
		}
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInsufficientPermission
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusRequestEntityTooLarge:
		return errors.OCRFileTooLarge
	case http.StatusUnsupportedMediaType:
		return errors.OCRUnsupportedFile
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
