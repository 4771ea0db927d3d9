package ocr

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// TesseractExtractor runs local Tesseract OCR over image bytes.
// A tesseract client is not safe for concurrent use, so calls are serialized.
type TesseractExtractor struct {
	languages []string
	mu        sync.Mutex
}

// NewTesseractExtractor creates an extractor for the given languages (default Thai + English)
func NewTesseractExtractor(languages ...string) *TesseractExtractor {
	if len(languages) == 0 {
		languages = []string{"tha", "eng"}
	}
	return &TesseractExtractor{languages: languages}
}

// Languages returns the configured tesseract language packs
func (e *TesseractExtractor) Languages() []string {
	return append([]string(nil), e.languages...)
}

func (e *TesseractExtractor) ExtractText(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(doc.Content) == 0 {
		return "", ErrNoText
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.languages...); err != nil {
		return "", fmt.Errorf("failed to set OCR languages: %w", err)
	}
	if err := client.SetImageFromBytes(doc.Content); err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
