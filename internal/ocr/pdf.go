package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

const scanDPI = 200

// PDFTextExtractor reads the text layer of a PDF with MuPDF. Pages without a
// text layer are rendered and handed to ImageOCR when one is configured.
type PDFTextExtractor struct {
	ImageOCR TextExtractor
	Logger   *zap.Logger
}

// NewPDFTextExtractor creates a PDF extractor; imageOCR may be nil
func NewPDFTextExtractor(imageOCR TextExtractor, logger *zap.Logger) *PDFTextExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFTextExtractor{ImageOCR: imageOCR, Logger: logger}
}

func (e *PDFTextExtractor) ExtractText(ctx context.Context, doc Document) (string, error) {
	pdf, err := fitz.NewFromMemory(doc.Content)
	if err != nil {
		if errors.Is(err, fitz.ErrNeedsPassword) {
			if doc.Password == "" {
				return "", ErrPasswordRequired
			}
			return "", ErrPasswordRejected
		}
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer pdf.Close()

	var sb strings.Builder
	scanned := 0

	for i := 0; i < pdf.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		pageText, err := pdf.Text(i)
		if err != nil {
			e.Logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.String("file", doc.Filename),
				zap.Error(err),
			)
			pageText = ""
		}

		if strings.TrimSpace(pageText) == "" && e.ImageOCR != nil {
			pageText, err = e.scanPage(ctx, pdf, i, doc.Filename)
			if err != nil {
				e.Logger.Warn("Failed to OCR rendered page",
					zap.Int("page", i+1),
					zap.String("file", doc.Filename),
					zap.Error(err),
				)
				continue
			}
			scanned++
		}

		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrNoText
	}

	e.Logger.Debug("PDF text extracted",
		zap.String("file", doc.Filename),
		zap.Int("pages", pdf.NumPage()),
		zap.Int("scanned_pages", scanned),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}

func (e *PDFTextExtractor) scanPage(ctx context.Context, pdf *fitz.Document, page int, filename string) (string, error) {
	png, err := pdf.ImagePNG(page, scanDPI)
	if err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return e.ImageOCR.ExtractText(ctx, Document{
		Filename: fmt.Sprintf("%s#%d.png", filename, page+1),
		Content:  png,
	})
}
