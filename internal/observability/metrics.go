package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	sessionStartedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "masking_service",
		Subsystem: "sessions",
		Name:      "last_session_started_timestamp_seconds",
		Help:      "Unix timestamp of the most recent session persisted to the store.",
	})

	sessionCompletedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "masking_service",
		Subsystem: "sessions",
		Name:      "last_session_completed_timestamp_seconds",
		Help:      "Unix timestamp of the most recent session completion.",
	})

	sessionsStartedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "masking_service",
		Subsystem: "sessions",
		Name:      "started_total",
		Help:      "Number of playback sessions created.",
	})

	sessionsCompletedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "masking_service",
		Subsystem: "sessions",
		Name:      "completed_total",
		Help:      "Number of playback sessions completed.",
	})

	maskingScoreHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "masking_service",
		Subsystem: "scoring",
		Name:      "effectiveness_score",
		Help:      "Distribution of masking effectiveness scores served.",
		Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
	})

	catalogSeededGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "masking_service",
		Subsystem: "catalog",
		Name:      "seeded_records",
		Help:      "Number of default records inserted at startup, labeled by collection.",
	}, []string{"collection"})
)

func init() {
	prometheus.MustRegister(
		sessionStartedGauge,
		sessionCompletedGauge,
		sessionsStartedCounter,
		sessionsCompletedCounter,
		maskingScoreHistogram,
		catalogSeededGauge,
	)
}

// RecordSessionStarted updates the session creation watermark and counter.
func RecordSessionStarted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	sessionStartedGauge.Set(float64(ts.Unix()))
	sessionsStartedCounter.Inc()
}

// RecordSessionCompleted updates the completion watermark and counter.
func RecordSessionCompleted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	sessionCompletedGauge.Set(float64(ts.Unix()))
	sessionsCompletedCounter.Inc()
}

// ObserveMaskingScore records a served effectiveness score.
func ObserveMaskingScore(score float64) {
	maskingScoreHistogram.Observe(score)
}

// RecordCatalogSeeded reports how many defaults were inserted for a collection.
func RecordCatalogSeeded(collection string, count int) {
	catalogSeededGauge.WithLabelValues(collection).Set(float64(count))
}
