package ocr

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"creditnext/internal/models"
)

var csvColumns = []string{"date", "description", "amount", "type"}

// ParseCSV reads a ledger with a date,description,amount,type header in any order.
// Rows with an unknown type or an unparseable amount are reported as errors
// so a typo never turns into a fabricated Income or Expense row.
func ParseCSV(content []byte) ([]models.Transaction, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTransactions
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", col)
		}
	}

	var txns []models.Transaction
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		amountStr := strings.ReplaceAll(strings.TrimSpace(record[index["amount"]]), ",", "")
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: invalid amount %q", line, amountStr)
		}

		t := models.Transaction{
			Date:        strings.TrimSpace(record[index["date"]]),
			Description: strings.TrimSpace(record[index["description"]]),
			Amount:      amount,
			Type:        strings.TrimSpace(record[index["type"]]),
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}
		txns = append(txns, t)
	}

	return txns, nil
}

// ParseJSON accepts either a bare array of transactions or {"transactions": [...]}
func ParseJSON(content []byte) ([]models.Transaction, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, ErrNoTransactions
	}

	var txns []models.Transaction
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &txns); err != nil {
			return nil, fmt.Errorf("invalid ledger JSON: %w", err)
		}
	} else {
		var wrapped struct {
			Transactions []models.Transaction `json:"transactions"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("invalid ledger JSON: %w", err)
		}
		txns = wrapped.Transactions
	}

	if i, err := models.ValidateTransactions(txns); err != nil {
		return nil, fmt.Errorf("transaction %d: %w", i, err)
	}
	return txns, nil
}
