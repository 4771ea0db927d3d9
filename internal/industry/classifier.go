// Package industry labels a ledger with its economic sector and derives the
// profit and income figures that depend on it.
package industry

import (
	"strings"

	"creditnext/internal/models"

	"github.com/shopspring/decimal"
)

const projectionDays = 30

// Rule maps a set of marker terms to an industry.
// Rules are evaluated in order and the first rule with a hit wins.
type Rule struct {
	Industry models.Industry
	Factor   float64
	Keywords []string
}

// Classifier is a keyword-rule engine over transaction descriptions
type Classifier struct {
	rules    []Rule
	fallback Rule
}

// DefaultRules returns the production keyword rules.
// Freelance is listed first so it wins when both marker sets are present.
func DefaultRules() []Rule {
	return []Rule{
		{
			Industry: models.IndustryFreelance,
			Factor:   models.FactorFreelance,
			Keywords: []string{"ค่าจ้าง", "freelance"},
		},
		{
			Industry: models.IndustryRetail,
			Factor:   models.FactorRetail,
			Keywords: []string{"วัตถุดิบ", "ขายของ"},
		},
	}
}

// NewClassifier creates a classifier with the default rules
func NewClassifier() *Classifier {
	return NewClassifierWithRules(DefaultRules())
}

// NewClassifierWithRules creates a classifier with custom rules
func NewClassifierWithRules(rules []Rule) *Classifier {
	normalized := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		normalized = append(normalized, Rule{Industry: rule.Industry, Factor: rule.Factor, Keywords: keywords})
	}

	return &Classifier{
		rules: normalized,
		fallback: Rule{
			Industry: models.IndustryOther,
			Factor:   models.FactorOther,
		},
	}
}

// Classify labels the ledger and computes proxy profit and the monthly income projection
func (c *Classifier) Classify(transactions []models.Transaction) models.IndustryAssessment {
	if len(transactions) == 0 {
		return models.UnknownIndustryAssessment()
	}

	rule := c.match(descriptionBlob(transactions))

	income, expense := models.SumByType(transactions)
	proxy := income.Sub(expense)
	adjusted := proxy.Mul(decimal.NewFromFloat(1 + rule.Factor))

	return models.IndustryAssessment{
		Industry:              rule.Industry,
		Factor:                rule.Factor,
		Income:                income,
		Expense:               expense,
		ProxyNetProfit:        proxy,
		AdjustedNetProfit:     adjusted,
		MonthlyIncomeEstimate: MonthlyIncomeEstimate(transactions, income),
	}
}

func (c *Classifier) match(blob string) Rule {
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			// substring match, no word boundaries
			if strings.Contains(blob, kw) {
				return rule
			}
		}
	}
	return c.fallback
}

func descriptionBlob(transactions []models.Transaction) string {
	parts := make([]string, len(transactions))
	for i := range transactions {
		parts[i] = transactions[i].Description
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// MonthlyIncomeEstimate projects the observed income onto a 30-day month.
// Rows with unparseable dates are ignored for the span; with no valid dates
// the raw income is returned unchanged.
func MonthlyIncomeEstimate(transactions []models.Transaction, income decimal.Decimal) decimal.Decimal {
	var first, last int64
	found := false

	for i := range transactions {
		date, ok := transactions[i].ParsedDate()
		if !ok {
			continue
		}
		day := date.Unix() / 86400
		if !found || day < first {
			first = day
		}
		if !found || day > last {
			last = day
		}
		found = true
	}

	if !found {
		return income
	}

	days := last - first
	if days < 1 {
		days = 1
	}

	estimate := income.Mul(decimal.NewFromInt(projectionDays)).Div(decimal.NewFromInt(days))
	if estimate.IsNegative() {
		return decimal.Zero
	}
	if estimate.GreaterThan(models.MaxMonthlyIncomeEstimate) {
		return models.MaxMonthlyIncomeEstimate
	}
	return estimate
}
