package ocr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Role1776/gigago"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"creditnext/internal/models"
)

const extractionSystemPrompt = "You are CreditNext, an underwriting-grade financial extraction agent for Thai freelancers. " +
	"Your job is to convert OCR text from Thai receipts/statements into clean, bank-ready structured transactions. " +
	"Be conservative, accurate, and consistent."

var bankHints = map[string]string{
	"scb":   "SCB/ธนาคารไทยพาณิชย์: วันที่อยู่ในรูปแบบ DD/MM/YYYY, รายการมักมีหัวข้อ 'รายการฝาก' และ 'รายการถอน'",
	"kbank": "KBank/กสิกรไทย: ค้นหาคอลัมน์ 'วันที่', 'รายการ', 'จำนวนเงิน'",
	"bbl":   "BBL/กรุงเทพ: มักใช้ 'เดบิต' และ 'เครดิต', วันที่อาจเป็น DD/MM/YY",
	"ktb":   "KTB/กรุงไทย: ดูที่ 'รายการเดินบัญชี', แยก รับ/จ่าย ชัดเจน",
	"bay":   "BAY/กรุงศรีอยุธยา: Statement มักมีตาราง เครดิต/เดบิต ที่ชัดเจน",
	"tmb":   "TMB/ทหารไทยธนชาต: ใช้ รับ/จ่าย ในหัวตาราง",
	"gsb":   "GSB/ออมสิน: รูปแบบง่าย มี วันที่, รายการ, รับ, จ่าย",
	"baac":  "BAAC/ธ.ก.ส.: มักเป็นเอกสารแบบฟอร์มราชการ ดูที่ช่อง 'ฝาก', 'ถอน'",
}

// KnownBanks returns the bank codes that have prompt hints
func KnownBanks() []string {
	return []string{"scb", "kbank", "bbl", "ktb", "bay", "tmb", "gsb", "baac"}
}

// BuildExtractionPrompt renders the JSON-only user prompt for a block of OCR text
func BuildExtractionPrompt(text, bank string) string {
	var sb strings.Builder
	sb.WriteString("Extract transactions from the OCR text. Output ONLY valid JSON (no markdown, no extra text).\n")
	sb.WriteString(`Schema: {"transactions": [{"date":"YYYY-MM-DD","description":"<Thai text>","amount":<number>,"type":"Income"|"Expense"}]}` + "\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Use ISO date format. If date missing, infer a plausible date and keep it consistent; never leave blank.\n")
	sb.WriteString("- amount must be a number (THB). If you see commas, remove them.\n")
	sb.WriteString("- type classification:\n")
	sb.WriteString("  Income: ลูกค้าโอน, โอนเข้า, ค่าจ้าง, รายรับ, รับเงิน, ขายของ, เครดิต, ฝาก\n")
	sb.WriteString("  Expense: ค่าวัตถุดิบ, ค่าเช่า, ค่าเช่าแผง, โอนให้แม่, ค่าเดินทาง, ค่าใช้จ่าย, เดบิต, ถอน, จ่าย\n")
	sb.WriteString("- Keep description in Thai; keep it short and meaningful.\n")
	sb.WriteString("- If uncertain, classify as Expense (conservative).\n")

	if bank = strings.ToLower(strings.TrimSpace(bank)); bank != "" {
		fmt.Fprintf(&sb, "\n\nBANK-SPECIFIC HINTS for %s:\n%s\n", strings.ToUpper(bank), bankHints[bank])
	}

	sb.WriteString("OCR TEXT:\n")
	sb.WriteString(text)
	return sb.String()
}

// Generator produces a single completion for a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GigaChatGenerator is a Generator backed by the GigaChat API
type GigaChatGenerator struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
}

// GigaChatConfig holds the credentials and model settings for GigaChat
type GigaChatConfig struct {
	AuthKey            string
	Scope              string
	Model              string
	InsecureSkipVerify bool
}

// NewGigaChatGenerator authenticates against GigaChat and prepares the extraction model
func NewGigaChatGenerator(ctx context.Context, cfg GigaChatConfig, logger *zap.Logger) (*GigaChatGenerator, error) {
	if cfg.AuthKey == "" {
		return nil, ErrLLMUnavailable
	}

	opts := []gigago.Option{}
	if cfg.Scope != "" {
		opts = append(opts, gigago.WithCustomScope(cfg.Scope))
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		if logger != nil {
			logger.Warn("GigaChat TLS certificate verification is disabled")
		}
	}

	client, err := gigago.NewClient(ctx, cfg.AuthKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	name := cfg.Model
	if name == "" {
		name = "GigaChat"
	}
	model := client.GenerativeModel(name)
	model.SystemInstruction = extractionSystemPrompt
	model.Temperature = 0.1

	return &GigaChatGenerator{client: client, model: model}, nil
}

func (g *GigaChatGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("gigachat request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("gigachat returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Close releases the underlying client
func (g *GigaChatGenerator) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// LLMStructurer asks a language model to structure OCR text into a ledger
type LLMStructurer struct {
	generator Generator
	breaker   Breaker
	timeout   time.Duration
	logger    *zap.Logger
}

// NewLLMStructurer wires a generator behind an optional circuit breaker
func NewLLMStructurer(generator Generator, breaker Breaker, timeout time.Duration, logger *zap.Logger) *LLMStructurer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMStructurer{generator: generator, breaker: breaker, timeout: timeout, logger: logger}
}

// Available reports whether a call would be attempted right now
func (s *LLMStructurer) Available() bool {
	if s == nil || s.generator == nil {
		return false
	}
	return s.breaker == nil || !s.breaker.IsOpen()
}

func (s *LLMStructurer) Structure(ctx context.Context, text, bank string) ([]models.Transaction, error) {
	if !s.Available() {
		return nil, ErrLLMUnavailable
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.generator.Generate(ctx, BuildExtractionPrompt(text, bank))
	if err != nil {
		s.recordFailure()
		return nil, err
	}

	txns, err := ParseLLMReply(reply)
	if err != nil {
		s.recordFailure()
		s.logger.Warn("LLM reply could not be parsed",
			zap.Int("reply_length", len(reply)),
			zap.Error(err),
		)
		return nil, err
	}

	if s.breaker != nil {
		s.breaker.RecordSuccess()
	}
	return txns, nil
}

func (s *LLMStructurer) recordFailure() {
	if s.breaker != nil {
		s.breaker.RecordFailure()
	}
}

type llmTransaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
	Type        string          `json:"type"`
}

// ParseLLMReply carves the JSON object out of a model reply and keeps the usable rows
func ParseLLMReply(reply string) ([]models.Transaction, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, errors.New("reply contains no JSON object")
	}

	var payload struct {
		Transactions []llmTransaction `json:"transactions"`
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON in reply: %w", err)
	}

	txns := make([]models.Transaction, 0, len(payload.Transactions))
	for _, row := range payload.Transactions {
		amount, ok := parseLooseAmount(row.Amount)
		if !ok {
			continue
		}
		txns = append(txns, models.Transaction{
			Date:        strings.TrimSpace(row.Date),
			Description: row.Description,
			Amount:      amount,
			Type:        strings.TrimSpace(row.Type),
		})
	}

	return sanitize(txns), nil
}

func parseLooseAmount(raw json.RawMessage) (decimal.Decimal, bool) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || s == "null" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
