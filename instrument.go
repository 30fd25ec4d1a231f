package metrics

import (
	"context"
	"time"
)

// Instrumented wraps a Metric and reports every call to a Collector and a
// Logger. It is as safe for concurrent use as the wrapped metric.
type Instrumented[T any] struct {
	metric    Metric[T]
	kind      Kind
	logger    *Logger
	collector Collector
}

// Instrument wraps m. Without options the wrapper still works but records
// nothing.
func Instrument[T any](m Metric[T], opts ...Option) *Instrumented[T] {
	o, _ := applyOptions(opts)
	kind := kindOf(m)
	return &Instrumented[T]{
		metric:    m,
		kind:      kind,
		logger:    o.logger.WithKind(kind),
		collector: o.collector,
	}
}

// Dist implements Metric.
func (i *Instrumented[T]) Dist(a, b T) (float64, error) {
	start := time.Now()
	d, err := i.metric.Dist(a, b)
	elapsed := time.Since(start)

	i.collector.RecordDist(i.kind, elapsed, err)
	i.logger.LogDist(context.Background(), d, elapsed, err)
	return d, err
}

// Kind returns the kind of the wrapped metric.
func (i *Instrumented[T]) Kind() Kind { return i.kind }

// Unwrap returns the wrapped metric.
func (i *Instrumented[T]) Unwrap() Metric[T] { return i.metric }
