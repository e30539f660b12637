package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRecordSessionStarted(t *testing.T) {
	before := testutil.ToFloat64(sessionsStartedCounter)

	ts := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	RecordSessionStarted(ts)

	require.InDelta(t, before+1, testutil.ToFloat64(sessionsStartedCounter), 0.0001)
	require.InDelta(t, float64(ts.Unix()), testutil.ToFloat64(sessionStartedGauge), 0.0001)

	// Zero timestamps are ignored.
	RecordSessionStarted(time.Time{})
	require.InDelta(t, before+1, testutil.ToFloat64(sessionsStartedCounter), 0.0001)
}

func TestObserveMaskingScore(t *testing.T) {
	before := histogramSampleCount(t)

	ObserveMaskingScore(0.7)

	require.Equal(t, before+1, histogramSampleCount(t))
}

func TestRecordCatalogSeeded(t *testing.T) {
	RecordCatalogSeeded("mri_patterns", 3)

	gauge := catalogSeededGauge.WithLabelValues("mri_patterns")
	require.InDelta(t, 3, testutil.ToFloat64(gauge), 0.0001)
}

func histogramSampleCount(t *testing.T) uint64 {
	t.Helper()

	var metric dto.Metric
	require.NoError(t, maskingScoreHistogram.Write(&metric))
	return metric.GetHistogram().GetSampleCount()
}
