package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditnext/internal/models"
)

func TestParseCSV(t *testing.T) {
	t.Run("header in any order and case", func(t *testing.T) {
		content := "\xef\xbb\xbfType,Amount,Date,Description\n" +
			"Income,\"3,500\",2025-01-01,ค่าจ้าง freelance\n" +
			"Expense,950.00,2025-01-10,ค่าวัตถุดิบ\n"

		txns, err := ParseCSV([]byte(content))
		require.NoError(t, err)
		require.Len(t, txns, 2)

		assert.Equal(t, "2025-01-01", txns[0].Date)
		assert.Equal(t, "ค่าจ้าง freelance", txns[0].Description)
		assert.Equal(t, "3500", txns[0].Amount.String())
		assert.Equal(t, models.TransactionTypeIncome, txns[0].Type)
		assert.Equal(t, models.TransactionTypeExpense, txns[1].Type)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := ParseCSV([]byte("date,description,amount,type\n2025-01-01,x,10,income\n"))
		assert.ErrorIs(t, err, models.ErrInvalidTransactionType)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := ParseCSV([]byte("date,description,amount,type\n2025-01-01,x,-10,Expense\n"))
		assert.ErrorIs(t, err, models.ErrNegativeAmount)
	})

	t.Run("bad amount", func(t *testing.T) {
		_, err := ParseCSV([]byte("date,description,amount,type\n2025-01-01,x,ten,Expense\n"))
		assert.Error(t, err)
	})

	t.Run("missing column", func(t *testing.T) {
		_, err := ParseCSV([]byte("date,description,amount\n2025-01-01,x,10\n"))
		assert.ErrorContains(t, err, `"type"`)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := ParseCSV(nil)
		assert.ErrorIs(t, err, ErrNoTransactions)
	})
}

func TestParseJSON(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		txns, err := ParseJSON([]byte(`[{"date":"2025-01-01","description":"ขายของ","amount":"1800","type":"Income"}]`))
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, "1800", txns[0].Amount.String())
	})

	t.Run("wrapped object", func(t *testing.T) {
		txns, err := ParseJSON([]byte(`{"transactions":[{"date":"2025-01-01","description":"ค่าเดินทาง","amount":220,"type":"Expense"}]}`))
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, models.TransactionTypeExpense, txns[0].Type)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := ParseJSON([]byte(`[{"date":"2025-01-01","description":"x","amount":1,"type":"Refund"}]`))
		assert.ErrorIs(t, err, models.ErrInvalidTransactionType)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseJSON([]byte("  "))
		assert.ErrorIs(t, err, ErrNoTransactions)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseJSON([]byte(`{"transactions":`))
		assert.Error(t, err)
	})
}
