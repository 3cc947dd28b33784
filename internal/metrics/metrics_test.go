package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, AnalysesTotal)
	assert.NotNil(t, AnalysisDuration)
	assert.NotNil(t, ComponentUnavailableTotal)
	assert.NotNil(t, ScoringDistribution)
	assert.NotNil(t, CacheRequestsTotal)
	assert.NotNil(t, SweepDuration)
	assert.NotNil(t, SweepPropertiesTotal)
	assert.NotNil(t, SweepLastSuccessTimestamp)
	assert.NotNil(t, SweepNextRunTimestamp)
}

func TestCacheRequestsTotal_Labels(t *testing.T) {
	t.Parallel()

	c := CacheRequestsTotal.WithLabelValues("metrics-test", "hit")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(c), 1e-9)
}
