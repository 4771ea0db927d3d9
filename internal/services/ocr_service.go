package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"creditnext/internal/config"
	"creditnext/internal/models"
	"creditnext/internal/ocr"

	"go.uber.org/zap"
)

var (
	ErrEmptyUpload  = errors.New("uploaded file is empty")
	ErrFileTooLarge = errors.New("uploaded file exceeds the size limit")
)

type OCRService struct {
	extractor DocumentExtractor
	metrics   MetricsRecorderInterface
	audit     AuditLoggerInterface
	maxBytes  int64
}

func NewOCRService(extractor DocumentExtractor, metrics MetricsRecorderInterface, audit AuditLoggerInterface, maxBytes int64) OCRServiceInterface {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if audit == nil {
		audit = NewAuditLogger(nil)
	}
	return &OCRService{
		extractor: extractor,
		metrics:   metrics,
		audit:     audit,
		maxBytes:  maxBytes,
	}
}

// Extract checks the upload and runs it through the extraction pipeline
func (s *OCRService) Extract(ctx context.Context, doc ocr.Document, bank string) (*ocr.Extraction, error) {
	if len(doc.Content) == 0 {
		return nil, ErrEmptyUpload
	}
	if s.maxBytes > 0 && int64(len(doc.Content)) > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(doc.Content))
	}
	if !ocr.IsSupported(doc.Filename) {
		return nil, fmt.Errorf("%w: %q", ocr.ErrUnsupportedFile, doc.Ext())
	}

	start := time.Now()
	extraction, err := s.extractor.Extract(ctx, doc, strings.ToLower(strings.TrimSpace(bank)))
	duration := time.Since(start)
	s.metrics.RecordProcessingTime("ocr.extraction", duration)

	if err != nil {
		s.metrics.IncrementCounter("ocr.extraction", map[string]string{"source": "none", "status": "failed"})
		s.audit.LogOCRFailed(ctx, doc.Filename, err)
		return nil, err
	}

	s.metrics.IncrementCounter("ocr.extraction", map[string]string{"source": string(extraction.Source), "status": "success"})
	s.audit.LogOCRExtraction(ctx, doc.Filename, extraction.Source, len(extraction.Transactions), duration)
	return extraction, nil
}

// NewOCRPipeline assembles the production pipeline from configuration.
// The LLM stage is only added when GigaChat credentials are configured; the
// returned close function releases the LLM client.
func NewOCRPipeline(ctx context.Context, cfg *config.OCRConfig, breaker ocr.Breaker, logger *zap.Logger) (*ocr.Pipeline, func()) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tesseract := ocr.NewTesseractExtractor(cfg.TesseractLanguages...)
	opts := []ocr.PipelineOption{
		ocr.WithImageExtractor(tesseract),
		ocr.WithPDFExtractor(ocr.NewPDFTextExtractor(tesseract, logger)),
		ocr.WithHeuristic(ocr.NewHeuristicParser(nil)),
		ocr.WithMockFallback(cfg.MockFallback),
		ocr.WithPipelineLogger(logger),
	}

	closeFn := func() {}
	if cfg.LLMEnabled() {
		generator, err := ocr.NewGigaChatGenerator(ctx, ocr.GigaChatConfig{
			AuthKey:            cfg.GigaChatAuthKey,
			Scope:              cfg.GigaChatScope,
			Model:              cfg.GigaChatModel,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		}, logger)
		if err != nil {
			logger.Warn("LLM structuring disabled", zap.Error(err))
		} else {
			opts = append(opts, ocr.WithLLM(ocr.NewLLMStructurer(generator, breaker, cfg.LLMTimeout, logger)))
			closeFn = generator.Close
		}
	}

	return ocr.NewPipeline(opts...), closeFn
}

// BreakerStateRecorder reports circuit breaker transitions to metrics and the audit log
func BreakerStateRecorder(metrics MetricsRecorderInterface, audit AuditLoggerInterface) func(name string, from, to models.CircuitBreakerState) {
	return func(name string, from, to models.CircuitBreakerState) {
		metrics.RecordGauge("circuit_breaker.state", float64(to), map[string]string{"service": name})
		audit.LogCircuitBreakerStateChange(context.Background(), name, from.String(), to.String())
	}
}
