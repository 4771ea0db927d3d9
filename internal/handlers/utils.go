package handlers

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"

	"creditnext/internal/errors"
	"creditnext/internal/models"
	"creditnext/internal/ocr"
	"creditnext/internal/services"

	"github.com/labstack/echo/v4"
)

// sendServiceError maps service sentinel errors onto API error codes
func sendServiceError(c echo.Context, err error) error {
	details := errors.WithDetails(err.Error())

	switch {
	case stderrors.Is(err, services.ErrModelNotReady):
		return SendError(c, errors.ModelNotReady)
	case stderrors.Is(err, services.ErrTooManyTransactions):
		return SendError(c, errors.LedgerTooManyTransactions, details)
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.ValidationInvalidTransactionType, details)
	case stderrors.Is(err, models.ErrNegativeAmount):
		return SendError(c, errors.ValidationNegativeAmount, details)
	case stderrors.Is(err, models.ErrAmountTooLarge):
		return SendError(c, errors.ValidationOutOfRange, details)
	case stderrors.Is(err, services.ErrInvalidLedger):
		return SendError(c, errors.ValidationGeneral, details)
	case stderrors.Is(err, services.ErrEmptyBatch):
		return SendError(c, errors.LedgerEmptyBatch)
	case stderrors.Is(err, services.ErrBatchTooLarge):
		return SendError(c, errors.LedgerBatchTooLarge, details)
	case stderrors.Is(err, services.ErrInvalidSeed):
		return SendError(c, errors.ModelInvalidSeed)
	case stderrors.Is(err, services.ErrRetrainFailed):
		return SendError(c, errors.ModelTrainingFailed)
	case stderrors.Is(err, services.ErrAssessmentNotFound):
		return SendError(c, errors.AssessmentNotFound)
	case stderrors.Is(err, services.ErrHistoryDisabled):
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Assessment history is not configured"))
	case stderrors.Is(err, services.ErrEmptyUpload):
		return SendError(c, errors.OCRMissingFile, errors.WithDetails("Uploaded file is empty"))
	case stderrors.Is(err, services.ErrFileTooLarge):
		return SendError(c, errors.OCRFileTooLarge)
	case stderrors.Is(err, ocr.ErrUnsupportedFile):
		return SendError(c, errors.OCRUnsupportedFile, details)
	case stderrors.Is(err, ocr.ErrPasswordRequired):
		return SendError(c, errors.OCRPasswordRequired)
	case stderrors.Is(err, ocr.ErrPasswordRejected):
		return SendError(c, errors.OCRPasswordRequired, errors.WithDetails("The supplied password was not accepted"))
	case stderrors.Is(err, ocr.ErrNoTransactions):
		return SendError(c, errors.OCRNoTransactions)
	case stderrors.Is(err, ocr.ErrExtractionFailed), stderrors.Is(err, ocr.ErrNoText):
		return SendError(c, errors.OCRExtractionFailed)
	case stderrors.Is(err, services.ErrInvalidCredentials):
		return SendError(c, errors.AuthInvalidCredentials)
	case stderrors.Is(err, services.ErrOperatorDisabled):
		return SendError(c, errors.AuthOperatorDisabled)
	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Request was cancelled or timed out"))
	case stderrors.Is(err, services.ErrStorage):
		return SendDatabaseError(c, err)
	default:
		return SendSystemError(c, err)
	}
}

// optionalIntQuery parses an optional integer query parameter
func optionalIntQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &value, nil
}
