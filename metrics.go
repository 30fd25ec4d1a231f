package metrics

import (
	"sync/atomic"
	"time"
)

// Collector receives one record per distance evaluation made through an
// instrumented metric. Implement it to integrate with monitoring systems; see
// the observability package for a Prometheus implementation.
//
// Implementations must be safe for concurrent use.
type Collector interface {
	// RecordDist is called after each Dist call.
	// err is nil if the call succeeded.
	RecordDist(kind Kind, duration time.Duration, err error)
}

// NoopCollector discards every record.
type NoopCollector struct{}

func (NoopCollector) RecordDist(Kind, time.Duration, error) {}

// BasicCollector provides simple in-memory counters.
// Useful for debugging and tests without external dependencies.
type BasicCollector struct {
	DistCount      atomic.Int64
	DistErrors     atomic.Int64
	DistTotalNanos atomic.Int64

	byKind [KindPAdic + 1]atomic.Int64
}

// RecordDist implements Collector.
func (b *BasicCollector) RecordDist(kind Kind, duration time.Duration, err error) {
	b.DistCount.Add(1)
	b.DistTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DistErrors.Add(1)
	}
	if kind < 0 || int(kind) >= len(b.byKind) {
		kind = KindUnknown
	}
	b.byKind[kind].Add(1)
}

// Stats returns a snapshot of the current counters.
func (b *BasicCollector) Stats() BasicStats {
	s := BasicStats{
		DistCount:    b.DistCount.Load(),
		DistErrors:   b.DistErrors.Load(),
		DistAvgNanos: b.avgNanos(),
		ByKind:       make(map[Kind]int64, len(b.byKind)),
	}
	for k := range b.byKind {
		if n := b.byKind[k].Load(); n > 0 {
			s.ByKind[Kind(k)] = n
		}
	}
	return s
}

func (b *BasicCollector) avgNanos() int64 {
	count := b.DistCount.Load()
	if count == 0 {
		return 0
	}
	return b.DistTotalNanos.Load() / count
}

// BasicStats is a snapshot of BasicCollector state.
type BasicStats struct {
	DistCount    int64
	DistErrors   int64
	DistAvgNanos int64
	ByKind       map[Kind]int64
}
