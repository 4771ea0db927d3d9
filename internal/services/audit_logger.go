package services

import (
	"context"
	"time"

	"creditnext/internal/models"
	"creditnext/internal/ocr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuditLogger struct {
	logger *zap.Logger
}

func NewAuditLogger(logger *zap.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogAssessmentCompleted(ctx context.Context, eval *models.Evaluation, assessmentID *uuid.UUID, duration time.Duration) {
	fields := []zap.Field{
		zap.String("event_type", "assessment_completed"),
		zap.String("industry", string(eval.Industry)),
		zap.Int("credit_score", eval.CreditScore),
		zap.String("risk_grade", string(eval.RiskGrade)),
		zap.String("attribution_method", string(eval.Explanation.Method)),
		zap.Int("transaction_count", eval.TransactionCount),
		zap.Int64("duration_ms", duration.Milliseconds()),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	}
	if assessmentID != nil {
		fields = append(fields, zap.String("assessment_id", assessmentID.String()))
	}

	al.logger.Info("assessment completed", fields...)
}

func (al *AuditLogger) LogAssessmentPersistFailed(ctx context.Context, err error) {
	al.logger.Warn("assessment not persisted",
		zap.String("event_type", "assessment_persist_failed"),
		zap.Error(err),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogBatchCompleted(ctx context.Context, ledgers int, duration time.Duration) {
	al.logger.Info("batch assessment completed",
		zap.String("event_type", "batch_completed"),
		zap.Int("ledgers", ledgers),
		zap.Int64("duration_ms", duration.Milliseconds()),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogOCRExtraction(ctx context.Context, filename string, source ocr.Source, transactions int, duration time.Duration) {
	al.logger.Info("statement extracted",
		zap.String("event_type", "ocr_extraction"),
		zap.String("filename", filename),
		zap.String("source", string(source)),
		zap.Int("transactions", transactions),
		zap.Int64("duration_ms", duration.Milliseconds()),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogOCRFailed(ctx context.Context, filename string, err error) {
	al.logger.Warn("statement extraction failed",
		zap.String("event_type", "ocr_failed"),
		zap.String("filename", filename),
		zap.Error(err),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogModelRetrained(ctx context.Context, seed int64, backend string, auc float64, duration time.Duration) {
	al.logger.Info("model retrained",
		zap.String("event_type", "model_retrained"),
		zap.Int64("seed", seed),
		zap.String("backend", backend),
		zap.Float64("holdout_auc", auc),
		zap.Int64("duration_ms", duration.Milliseconds()),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogModelRetrainFailed(ctx context.Context, seed int64, err error) {
	al.logger.Error("model retrain failed",
		zap.String("event_type", "model_retrain_failed"),
		zap.Int64("seed", seed),
		zap.Error(err),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.Warn("circuit breaker state change",
		zap.String("event_type", "circuit_breaker_state_change"),
		zap.String("service", service),
		zap.String("old_state", oldState),
		zap.String("new_state", newState),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

type contextKey string

const traceIDKey contextKey = "trace_id"

// ContextWithTraceID attaches the request trace id to ctx
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext returns the trace id set by ContextWithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}

	return ""
}
