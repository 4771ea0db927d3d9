package ocr

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"creditnext/internal/models"
)

// Pipeline turns an uploaded document into a ledger.
// Structured files are parsed directly; PDFs and images are read to text and
// then structured by the LLM, the heuristic parser and finally the mock ledger.
type Pipeline struct {
	pdf          TextExtractor
	image        TextExtractor
	llm          *LLMStructurer
	heuristic    Structurer
	mock         MockProvider
	mockFallback bool
	logger       *zap.Logger
}

// PipelineOption configures a Pipeline
type PipelineOption func(*Pipeline)

// WithPDFExtractor sets the PDF text extractor
func WithPDFExtractor(e TextExtractor) PipelineOption {
	return func(p *Pipeline) { p.pdf = e }
}

// WithImageExtractor sets the image OCR extractor
func WithImageExtractor(e TextExtractor) PipelineOption {
	return func(p *Pipeline) { p.image = e }
}

// WithLLM sets the LLM structurer tried before the heuristic parser
func WithLLM(s *LLMStructurer) PipelineOption {
	return func(p *Pipeline) { p.llm = s }
}

// WithHeuristic replaces the heuristic parser
func WithHeuristic(s Structurer) PipelineOption {
	return func(p *Pipeline) { p.heuristic = s }
}

// WithMockFallback enables the deterministic demo ledger as the last resort
func WithMockFallback(enabled bool) PipelineOption {
	return func(p *Pipeline) { p.mockFallback = enabled }
}

// WithPipelineLogger sets the logger
func WithPipelineLogger(l *zap.Logger) PipelineOption {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline builds a pipeline; without options only structured files and the heuristic parser are available
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		heuristic: NewHeuristicParser(nil),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract dispatches on the file extension and returns the recovered ledger
func (p *Pipeline) Extract(ctx context.Context, doc Document, bank string) (*Extraction, error) {
	ext := doc.Ext()

	switch ext {
	case ".ofx", ".qfx":
		return p.structured(doc, SourceOFX, ParseOFX)
	case ".csv":
		return p.structured(doc, SourceCSV, ParseCSV)
	case ".json":
		return p.structured(doc, SourceJSON, ParseJSON)
	}

	var extractor TextExtractor
	switch {
	case ext == ".pdf":
		extractor = p.pdf
	case IsImage(ext):
		extractor = p.image
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}

	if extractor == nil {
		return p.fallback(doc, fmt.Errorf("no text extractor configured for %s", ext))
	}

	text, err := extractor.ExtractText(ctx, doc)
	if err != nil {
		if errors.Is(err, ErrPasswordRequired) || errors.Is(err, ErrPasswordRejected) || ctx.Err() != nil {
			return nil, err
		}
		return p.fallback(doc, err)
	}

	return p.structure(ctx, doc, text, bank)
}

func (p *Pipeline) structured(doc Document, source Source, parse func([]byte) ([]models.Transaction, error)) (*Extraction, error) {
	txns, err := parse(doc.Content)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, ErrNoTransactions
	}
	return &Extraction{Transactions: txns, Source: source}, nil
}

func (p *Pipeline) structure(ctx context.Context, doc Document, text, bank string) (*Extraction, error) {
	if p.llm.Available() {
		txns, err := p.llm.Structure(ctx, text, bank)
		switch {
		case err != nil:
			p.logger.Warn("LLM structuring failed, falling back to heuristic parser",
				zap.String("file", doc.Filename),
				zap.Error(err),
			)
		case len(txns) > 0:
			return &Extraction{Transactions: txns, Source: SourceLLM}, nil
		}
	}

	txns, err := p.heuristic.Structure(ctx, text, bank)
	if err != nil {
		return p.fallback(doc, err)
	}
	if len(txns) > 0 {
		return &Extraction{Transactions: txns, Source: SourceHeuristic}, nil
	}

	return p.fallback(doc, ErrNoTransactions)
}

func (p *Pipeline) fallback(doc Document, cause error) (*Extraction, error) {
	if !p.mockFallback {
		if errors.Is(cause, ErrNoTransactions) {
			return nil, cause
		}
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, cause)
	}

	p.logger.Info("Using demo ledger for document",
		zap.String("file", doc.Filename),
		zap.NamedError("cause", cause),
	)
	return &Extraction{Transactions: p.mock.Ledger(doc.Content), Source: SourceMock}, nil
}
