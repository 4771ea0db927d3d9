package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	assessmentsTotal       *prometheus.CounterVec
	assessmentPersistFails prometheus.Counter
	scoringDuration        prometheus.Histogram
	creditScore            prometheus.Histogram
	batchSize              prometheus.Histogram
	ocrExtractions         *prometheus.CounterVec
	ocrDuration            prometheus.Histogram
	circuitBreakerState    *prometheus.GaugeVec
	modelRetrains          *prometheus.CounterVec
	trainingDuration       prometheus.Histogram
	holdoutAUC             prometheus.Gauge
}

// NewPrometheusMetrics registers the service metrics on reg; nil means the default registerer
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		assessmentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assessments_total",
				Help: "Total number of ledgers scored",
			},
			[]string{"risk_grade", "industry", "method"},
		),
		assessmentPersistFails: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "assessment_persist_failures_total",
				Help: "Total number of scored ledgers that could not be stored",
			},
		),
		scoringDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "assessment_scoring_duration_milliseconds",
				Help:    "Time spent classifying, extracting features and scoring one ledger",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 14),
			},
		),
		creditScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "assessment_credit_score",
				Help:    "Distribution of issued credit scores",
				Buckets: prometheus.LinearBuckets(300, 60, 11),
			},
		),
		batchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "assessment_batch_size",
				Help:    "Number of ledgers per batch request",
				Buckets: []float64{1, 2, 5, 10, 20, 50},
			},
		),
		ocrExtractions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ocr_extractions_total",
				Help: "Total number of statement extractions by source and status",
			},
			[]string{"source", "status"},
		),
		ocrDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ocr_extraction_duration_seconds",
				Help:    "Statement extraction duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		modelRetrains: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "model_retrains_total",
				Help: "Total number of model retrain requests",
			},
			[]string{"status"},
		),
		trainingDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "model_training_duration_seconds",
				Help:    "Model training duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			},
		),
		holdoutAUC: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "model_holdout_auc",
				Help: "ROC AUC of the active model on its holdout split",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "assessment.completed":
		m.assessmentsTotal.WithLabelValues(tags["risk_grade"], tags["industry"], tags["method"]).Inc()
	case "assessment.persist_failed":
		m.assessmentPersistFails.Inc()
	case "ocr.extraction":
		if status := tags["status"]; status != "" {
			m.ocrExtractions.WithLabelValues(tags["source"], status).Inc()
		}
	case "model.retrain":
		if status := tags["status"]; status != "" {
			m.modelRetrains.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "assessment.scoring":
		m.scoringDuration.Observe(float64(duration.Microseconds()) / 1000)
	case "ocr.extraction":
		m.ocrDuration.Observe(duration.Seconds())
	case "model.training":
		m.trainingDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "assessment.credit_score":
		m.creditScore.Observe(value)
	case "assessment.batch_size":
		m.batchSize.Observe(value)
	case "model.holdout_auc":
		m.holdoutAUC.Set(value)
	case "circuit_breaker.state":
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}

// NopMetrics discards everything; used by the CLI
type NopMetrics struct{}

func (NopMetrics) IncrementCounter(string, map[string]string)     {}
func (NopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (NopMetrics) RecordGauge(string, float64, map[string]string) {}
