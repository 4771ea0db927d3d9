package errors

import "net/http"

// ErrorCode is the stable, machine-readable identifier carried in every API error body
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
	AuthInvalidCredentials     ErrorCode = "AUTH_005"
	AuthOperatorDisabled       ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral                ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat          ErrorCode = "VALIDATION_003"
	ValidationOutOfRange             ErrorCode = "VALIDATION_004"
	ValidationInvalidTransactionType ErrorCode = "VALIDATION_005"
	ValidationNegativeAmount         ErrorCode = "VALIDATION_006"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerEmptyBatch          ErrorCode = "LEDGER_001"
	LedgerBatchTooLarge       ErrorCode = "LEDGER_002"
	LedgerTooManyTransactions ErrorCode = "LEDGER_003"
)

// Model error codes (MODEL_*)
const (
	ModelNotReady       ErrorCode = "MODEL_001"
	ModelTrainingFailed ErrorCode = "MODEL_002"
	ModelInvalidSeed    ErrorCode = "MODEL_003"
)

// OCR error codes (OCR_*)
const (
	OCRUnsupportedFile  ErrorCode = "OCR_001"
	OCRPasswordRequired ErrorCode = "OCR_002"
	OCRExtractionFailed ErrorCode = "OCR_003"
	OCRNoTransactions   ErrorCode = "OCR_004"
	OCRFileTooLarge     ErrorCode = "OCR_005"
	OCRMissingFile      ErrorCode = "OCR_006"
)

// Assessment error codes (ASSESSMENT_*)
const (
	AssessmentNotFound  ErrorCode = "ASSESSMENT_001"
	AssessmentInvalidID ErrorCode = "ASSESSMENT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

type codeInfo struct {
	status  int
	message string
}

// catalog is the single source of the status and default message of each code.
// Gaps in the numbering are retired codes and must not be reused.
var catalog = map[ErrorCode]codeInfo{
	AuthMissingToken:           {http.StatusUnauthorized, "Authorization token is required"},
	AuthExpiredToken:           {http.StatusUnauthorized, "Authorization token has expired"},
	AuthInvalidTokenFormat:     {http.StatusUnauthorized, "Invalid authorization token format"},
	AuthInsufficientPermission: {http.StatusForbidden, "Insufficient permissions to access this resource"},
	AuthInvalidCredentials:     {http.StatusUnauthorized, "Invalid username or password"},
	AuthOperatorDisabled:       {http.StatusServiceUnavailable, "Operator login is not configured"},

	ValidationGeneral:                {http.StatusBadRequest, "Validation failed"},
	ValidationInvalidFormat:          {http.StatusBadRequest, "Invalid field format"},
	ValidationOutOfRange:             {http.StatusBadRequest, "Field value is out of allowed range"},
	ValidationInvalidTransactionType: {http.StatusBadRequest, "Transaction type must be Income or Expense"},
	ValidationNegativeAmount:         {http.StatusBadRequest, "Transaction amount must not be negative"},

	LedgerEmptyBatch:          {http.StatusBadRequest, "Batch must contain at least one ledger"},
	LedgerBatchTooLarge:       {http.StatusBadRequest, "Batch contains too many ledgers"},
	LedgerTooManyTransactions: {http.StatusRequestEntityTooLarge, "Ledger contains too many transactions"},

	ModelNotReady:       {http.StatusServiceUnavailable, "Scoring model is not ready"},
	ModelTrainingFailed: {http.StatusInternalServerError, "Scoring model could not be trained"},
	ModelInvalidSeed:    {http.StatusBadRequest, "Invalid training seed"},

	OCRUnsupportedFile:  {http.StatusUnsupportedMediaType, "Unsupported statement file type"},
	OCRPasswordRequired: {http.StatusUnprocessableEntity, "Statement PDF is encrypted and requires a password"},
	OCRExtractionFailed: {http.StatusUnprocessableEntity, "Could not extract text from the statement"},
	OCRNoTransactions:   {http.StatusUnprocessableEntity, "No transactions were found in the statement"},
	OCRFileTooLarge:     {http.StatusRequestEntityTooLarge, "Statement file exceeds the upload limit"},
	OCRMissingFile:      {http.StatusBadRequest, "Statement file is required"},

	AssessmentNotFound:  {http.StatusNotFound, "Assessment not found"},
	AssessmentInvalidID: {http.StatusBadRequest, "Invalid assessment ID format"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemDatabaseError:      {http.StatusInternalServerError, "Assessment history is temporarily unavailable"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
	SystemRouteNotFound:      {http.StatusNotFound, "Resource not found"},
}

// GetErrorMessage returns the default message of a code
func GetErrorMessage(code ErrorCode) string {
	if info, ok := catalog[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the HTTP status of a code; unknown codes are treated as 500
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := catalog[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}
