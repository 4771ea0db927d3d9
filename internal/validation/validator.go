package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"creditnext/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimals are validated through their float value
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("max_amount", validateMaxAmount)
	_ = v.RegisterValidation("risk_grade", validateRiskGrade)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// validateTransactionType accepts exactly "Income" or "Expense"
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateNonNegativeAmount validates that an amount is zero or greater
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() >= 0
	default:
		return false
	}
}

// validateMaxAmount rejects amounts above models.MaxTransactionAmount; an
// overflowing decimal converts to +Inf and fails too
func validateMaxAmount(fl validator.FieldLevel) bool {
	limit := models.MaxTransactionAmount.InexactFloat64()
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(fl.Field().Int()) <= limit
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() <= limit
	default:
		return false
	}
}

// validateRiskGrade accepts an empty filter or one of A-D
func validateRiskGrade(fl validator.FieldLevel) bool {
	grade := fl.Field().String()
	return grade == "" || models.IsValidRiskGrade(grade)
}

// FieldErrors flattens validation errors into namespaced field messages,
// e.g. "transactions[1].type" -> "must be Income or Expense"
func FieldErrors(err error) map[string]string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors[fieldPath(fe)] = FormatValidationError(fe)
	}
	return fieldErrors
}

// fieldPath drops the top-level struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// FormatValidationError converts a validator.FieldError to a human-readable message
func FormatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array {
			return fmt.Sprintf("must contain at least %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("must contain at most %s entries", fe.Param())
		default:
			return fmt.Sprintf("must be at most %s", fe.Param())
		}
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "transaction_type":
		return "must be Income or Expense"
	case "non_negative_amount":
		return "must not be negative"
	case "max_amount":
		return "must not exceed " + models.MaxTransactionAmount.String()
	case "risk_grade":
		return "must be one of: A B C D"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
