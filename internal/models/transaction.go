package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "Income"
	TransactionTypeExpense = "Expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
	ErrAmountTooLarge         = errors.New("transaction amount exceeds the supported maximum")
)

// MaxTransactionAmount bounds a single ledger line so every derived feature stays finite
var MaxTransactionAmount = decimal.New(1, 12)

// Transaction is a single ledger line as produced by OCR, file import or direct entry.
// Date is kept as the raw string; unparseable dates are filtered by the
// consumers instead of being rejected.
type Transaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
}

// Validate checks the boundary invariants of a transaction
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.Amount.GreaterThan(MaxTransactionAmount) {
		return ErrAmountTooLarge
	}

	return nil
}

// IsIncome returns true for Income transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true for Expense transactions
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount returns +amount for Income and -amount for Expense
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// ParsedDate returns the calendar date of the transaction, if it can be parsed
func (t *Transaction) ParsedDate() (time.Time, bool) {
	return ParseTransactionDate(t.Date)
}

// IsValidTransactionType checks if the transaction type is valid.
// Matching is exact: "income" is not a valid type.
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// ValidateTransactions validates a whole ledger and returns the index of the first invalid row
func ValidateTransactions(transactions []Transaction) (int, error) {
	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			return i, err
		}
	}
	return -1, nil
}

var transactionDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ParseTransactionDate parses an ISO-8601 style date and truncates it to a UTC calendar date
func ParseTransactionDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range transactionDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// SumByType returns the income and expense totals of a ledger
func SumByType(transactions []Transaction) (income, expense decimal.Decimal) {
	income = decimal.Zero
	expense = decimal.Zero

	for i := range transactions {
		switch transactions[i].Type {
		case TransactionTypeIncome:
			income = income.Add(transactions[i].Amount)
		case TransactionTypeExpense:
			expense = expense.Add(transactions[i].Amount)
		}
	}

	return income, expense
}
