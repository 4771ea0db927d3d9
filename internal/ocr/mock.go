package ocr

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"creditnext/internal/models"
)

type mockTemplate struct {
	description string
	amount      int64
	txType      string
}

var mockTemplates = []mockTemplate{
	{"ลูกค้าโอน", 4200, models.TransactionTypeIncome},
	{"ขายของ", 1800, models.TransactionTypeIncome},
	{"ค่าจ้าง freelance", 3500, models.TransactionTypeIncome},
	{"ค่าวัตถุดิบ", 950, models.TransactionTypeExpense},
	{"โอนให้แม่", 800, models.TransactionTypeExpense},
	{"ค่าเช่าแผง", 1200, models.TransactionTypeExpense},
	{"ค่าเดินทาง", 220, models.TransactionTypeExpense},
	{"ลูกค้าโอน (งวดงาน)", 5200, models.TransactionTypeIncome},
}

const (
	mockRows    = 6
	mockSpacing = 3
	mockWindow  = 21
)

var mockBaseDate = time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

// MockProvider produces a deterministic demo ledger derived from the document bytes.
// The same upload always yields the same ledger.
type MockProvider struct{}

// Ledger returns six rows selected from a fixed template ring by the content hash
func (MockProvider) Ledger(content []byte) []models.Transaction {
	sum := sha256.Sum256(content)
	seed, _ := strconv.ParseUint(hex.EncodeToString(sum[:4]), 16, 64)

	base := mockBaseDate.AddDate(0, 0, int(seed%mockWindow))
	start := int(seed % uint64(len(mockTemplates)))

	txns := make([]models.Transaction, 0, mockRows)
	for i := 0; i < mockRows; i++ {
		tpl := mockTemplates[(start+i)%len(mockTemplates)]
		txns = append(txns, models.Transaction{
			Date:        base.AddDate(0, 0, i*mockSpacing).Format("2006-01-02"),
			Description: tpl.description,
			Amount:      decimal.NewFromInt(tpl.amount),
			Type:        tpl.txType,
		})
	}
	return txns
}

// Structure ignores the text and derives the ledger from its bytes
func (m MockProvider) Structure(_ context.Context, text, _ string) ([]models.Transaction, error) {
	return m.Ledger([]byte(text)), nil
}
