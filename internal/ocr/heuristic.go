package ocr

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"creditnext/internal/models"
)

const maxDescriptionRunes = 50

var (
	datePattern   = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)
	timePattern   = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`)
	amountPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d{2})?|\d+(?:\.\d{2})?`)
	spacePattern  = regexp.MustCompile(`\s+`)

	incomeKeywords = []string{"โอนเข้า", "รับเงิน", "ค่าจ้าง", "รายรับ", "ขาย", "เงินเดือน", "ลูกค้าโอน"}
)

// HeuristicParser structures Thai statement text line by line without any remote call
type HeuristicParser struct {
	now func() time.Time
}

// NewHeuristicParser creates a parser; undated lines are stamped with clock()
func NewHeuristicParser(clock func() time.Time) *HeuristicParser {
	if clock == nil {
		clock = time.Now
	}
	return &HeuristicParser{now: clock}
}

func (p *HeuristicParser) Structure(ctx context.Context, text, _ string) ([]models.Transaction, error) {
	today := p.now().Format("2006-01-02")
	var txns []models.Transaction

	for _, line := range strings.Split(text, "\n") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if t, ok := p.parseLine(strings.TrimSpace(line), today); ok {
			txns = append(txns, t)
		}
	}

	return sanitize(txns), nil
}

func (p *HeuristicParser) parseLine(line, today string) (models.Transaction, bool) {
	if line == "" {
		return models.Transaction{}, false
	}

	rest := line
	date := today
	if loc := datePattern.FindStringSubmatchIndex(rest); loc != nil {
		if parsed, ok := p.parseDate(rest[loc[2]:loc[3]], rest[loc[4]:loc[5]], rest[loc[6]:loc[7]]); ok {
			date = parsed
		}
		rest = rest[:loc[0]] + " " + rest[loc[1]:]
	}
	rest = timePattern.ReplaceAllString(rest, " ")

	loc := amountPattern.FindStringIndex(rest)
	if loc == nil {
		return models.Transaction{}, false
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(rest[loc[0]:loc[1]], ",", ""))
	if err != nil {
		return models.Transaction{}, false
	}

	txType := models.TransactionTypeExpense
	for _, kw := range incomeKeywords {
		if strings.Contains(line, kw) {
			txType = models.TransactionTypeIncome
			break
		}
	}

	description := rest[:loc[0]] + " " + rest[loc[1]:]
	description = strings.TrimSpace(spacePattern.ReplaceAllString(description, " "))
	if description == "" {
		if txType == models.TransactionTypeIncome {
			description = "รายการรับเงิน"
		} else {
			description = "รายการจ่ายเงิน"
		}
	}
	if runes := []rune(description); len(runes) > maxDescriptionRunes {
		description = string(runes[:maxDescriptionRunes]) + "..."
	}

	return models.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        txType,
	}, true
}

// parseDate reads day/month/year groups. Buddhist-era years are converted to
// the Gregorian calendar; a two-digit year later than next year is read as a
// short Buddhist-era year.
func (p *HeuristicParser) parseDate(dayStr, monthStr, yearStr string) (string, bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return "", false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return "", false
	}

	switch len(yearStr) {
	case 2:
		short := year
		year = 2000 + short
		if year > p.now().Year()+1 {
			year = 2500 + short - 543
		}
	case 4:
		if year > 2400 {
			year -= 543
		}
	default:
		return "", false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
