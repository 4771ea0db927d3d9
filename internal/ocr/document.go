package ocr

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"creditnext/internal/models"
)

var (
	ErrUnsupportedFile  = errors.New("unsupported file type")
	ErrPasswordRequired = errors.New("document is encrypted and needs a password")
	ErrPasswordRejected = errors.New("document password was not accepted")
	ErrNoText           = errors.New("no text extracted from document")
	ErrExtractionFailed = errors.New("text extraction failed")
	ErrNoTransactions   = errors.New("no transactions found in document")
	ErrLLMUnavailable   = errors.New("llm structurer unavailable")
)

// Source names the path that produced an extraction
type Source string

const (
	SourceOFX       Source = "ofx"
	SourceCSV       Source = "csv"
	SourceJSON      Source = "json"
	SourceLLM       Source = "llm"
	SourceHeuristic Source = "heuristic"
	SourceMock      Source = "mock"
)

// Document is an uploaded statement or receipt
type Document struct {
	Filename string
	Content  []byte
	Password string
}

// Ext returns the lower-cased file extension including the dot
func (d Document) Ext() string {
	return strings.ToLower(filepath.Ext(d.Filename))
}

// Extraction is the ledger recovered from a document together with the path that produced it
type Extraction struct {
	Transactions []models.Transaction
	Source       Source
}

// TextExtractor turns a binary document into plain text
type TextExtractor interface {
	ExtractText(ctx context.Context, doc Document) (string, error)
}

// Structurer turns free text into ledger rows
type Structurer interface {
	Structure(ctx context.Context, text, bank string) ([]models.Transaction, error)
}

// Breaker guards calls to a remote collaborator
type Breaker interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".tif":  true,
	".tiff": true,
}

// IsImage reports whether the extension is handled by image OCR
func IsImage(ext string) bool {
	return imageExtensions[ext]
}

// IsSupported reports whether the pipeline can handle a file with the given name
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf", ".csv", ".json", ".ofx", ".qfx":
		return true
	}
	return IsImage(ext)
}

// sanitize drops rows that cannot be scored: unknown types and non-positive amounts
func sanitize(txns []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if !models.IsValidTransactionType(t.Type) || !t.Amount.IsPositive() {
			continue
		}
		t.Description = strings.TrimSpace(t.Description)
		out = append(out, t)
	}
	return out
}
