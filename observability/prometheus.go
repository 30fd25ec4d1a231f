// Package observability exports metric evaluation statistics to Prometheus.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nicksonwcmak/metrics"
)

// PrometheusCollector implements metrics.Collector.
type PrometheusCollector struct {
	latency *prometheus.HistogramVec
	calls   *prometheus.CounterVec
}

var _ metrics.Collector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collector and registers its series on
// reg. If reg is nil, prometheus.DefaultRegisterer is used.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "metrics_dist_duration_seconds",
			Help:    "Latency of distance evaluations",
			Buckets: prometheus.ExponentialBuckets(1e-8, 4, 10),
		}, []string{"kind", "status"}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metrics_dist_total",
			Help: "Total distance evaluations",
		}, []string{"kind", "status"}),
	}

	for _, col := range []prometheus.Collector{c.latency, c.calls} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordDist implements metrics.Collector.
func (c *PrometheusCollector) RecordDist(kind metrics.Kind, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.latency.WithLabelValues(kind.String(), status).Observe(duration.Seconds())
	c.calls.WithLabelValues(kind.String(), status).Inc()
}
