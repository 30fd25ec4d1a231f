package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicksonwcmak/metrics"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	m := metrics.Instrument[[]float64](metrics.NewEuclidean[float64](), metrics.WithCollector(c))

	_, err = m.Dist([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	_, err = m.Dist([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	_, err = m.Dist([]float64{0}, []float64{3, 4})
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.calls.WithLabelValues("lp", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.calls.WithLabelValues("lp", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.latency, "metrics_dist_duration_seconds"))
}

func TestPrometheusCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	_, err = NewPrometheusCollector(reg)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}
