package ocr

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"creditnext/internal/models"
)

var (
	severityFix = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFix      = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX repairs the formatting quirks banks commonly emit
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityFix.ReplaceAllStringFunc(content, strings.ToUpper)
	return tagFix.ReplaceAllString(content, "$1>")
}

// ParseOFX reads bank and credit card statements from an OFX or QFX file.
// Credits become Income and debits become Expense with the absolute amount.
func ParseOFX(content []byte) ([]models.Transaction, error) {
	resp, err := ofxgo.ParseResponse(bytes.NewReader([]byte(preprocessOFX(string(content)))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var txns []models.Transaction

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, t := range stmt.BankTranList.Transactions {
				txns = append(txns, convertOFX(t))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, t := range stmt.BankTranList.Transactions {
				txns = append(txns, convertOFX(t))
			}
		}
	}

	return sanitize(txns), nil
}

func convertOFX(t ofxgo.Transaction) models.Transaction {
	amount, err := decimal.NewFromString(t.TrnAmt.String())
	if err != nil {
		f, _ := t.TrnAmt.Float64()
		amount = decimal.NewFromFloat(f)
	}

	txType := models.TransactionTypeIncome
	if amount.IsNegative() {
		txType = models.TransactionTypeExpense
	}

	return models.Transaction{
		Date:        t.DtPosted.Format("2006-01-02"),
		Description: ofxDescription(t),
		Amount:      amount.Abs(),
		Type:        txType,
	}
}

func ofxDescription(t ofxgo.Transaction) string {
	if name := strings.TrimSpace(string(t.Name)); name != "" {
		return name
	}
	if t.Payee != nil {
		if name := strings.TrimSpace(string(t.Payee.Name)); name != "" {
			return name
		}
	}
	return strings.TrimSpace(string(t.Memo))
}
