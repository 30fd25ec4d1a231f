package metrics

import (
	"context"
	"math/big"
	"slices"
)

// Operand domains accepted by the configuration-driven constructors.
const (
	DomainVector     = "vector"
	DomainString     = "string"
	DomainInteger    = "integer"
	DomainBigInteger = "big-integer"
)

// NewVectorMetric returns the metric described by cfg over float64 vectors.
// Supported kinds: discrete, hamming, lp.
//
// If a logger or collector option is given, the metric is instrumented.
func NewVectorMetric(cfg Config, opts ...Option) (Metric[[]float64], error) {
	m, err := vectorMetric(cfg)
	return finish(cfg, DomainVector, m, err, opts)
}

// NewStringMetric returns the metric described by cfg over strings.
// Supported kinds: discrete, hamming.
func NewStringMetric(cfg Config, opts ...Option) (Metric[string], error) {
	m, err := stringMetric(cfg)
	return finish(cfg, DomainString, m, err, opts)
}

// NewIntegerMetric returns the metric described by cfg over int64.
// Supported kinds: discrete, padic.
func NewIntegerMetric(cfg Config, opts ...Option) (Metric[int64], error) {
	m, err := integerMetric(cfg)
	return finish(cfg, DomainInteger, m, err, opts)
}

// NewBigIntegerMetric returns the metric described by cfg over *big.Int.
// Supported kinds: discrete, padic.
func NewBigIntegerMetric(cfg Config, opts ...Option) (Metric[*big.Int], error) {
	m, err := bigIntegerMetric(cfg)
	return finish(cfg, DomainBigInteger, m, err, opts)
}

func finish[T any](cfg Config, domain string, m Metric[T], err error, opts []Option) (Metric[T], error) {
	o, instrumented := applyOptions(opts)
	o.logger.LogConfig(context.Background(), cfg, domain, err)
	if err != nil {
		return nil, err
	}
	if !instrumented {
		return m, nil
	}
	return Instrument(m, opts...), nil
}

func vectorMetric(cfg Config) (Metric[[]float64], error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case KindDiscrete:
		return NewDiscreteFunc(slices.Equal[[]float64])
	case KindHamming:
		return Hamming[float64]{}, nil
	case KindLp:
		lp, err := NewLpNorm[float64](float64(cfg.P))
		if err != nil {
			return nil, err
		}
		return lp, nil
	default:
		return nil, &ErrUnsupportedKind{Kind: cfg.Kind, Domain: DomainVector}
	}
}

func stringMetric(cfg Config) (Metric[string], error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case KindDiscrete:
		return Discrete[string]{}, nil
	case KindHamming:
		return StringHamming{}, nil
	default:
		return nil, &ErrUnsupportedKind{Kind: cfg.Kind, Domain: DomainString}
	}
}

func integerMetric(cfg Config) (Metric[int64], error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case KindDiscrete:
		return Discrete[int64]{}, nil
	case KindPAdic:
		m, err := NewPAdic[int64](int(cfg.P))
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, &ErrUnsupportedKind{Kind: cfg.Kind, Domain: DomainInteger}
	}
}

func bigIntegerMetric(cfg Config) (Metric[*big.Int], error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case KindDiscrete:
		return NewDiscreteFunc(bigEqual)
	case KindPAdic:
		m, err := NewBigPAdic(big.NewInt(int64(cfg.P)))
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, &ErrUnsupportedKind{Kind: cfg.Kind, Domain: DomainBigInteger}
	}
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}
