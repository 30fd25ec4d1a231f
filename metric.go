package metrics

import (
	"fmt"
	"strings"
)

// Metric is a distance function over a metric space of T values.
//
// Implementations must satisfy, for all a, b, c in the space:
//
//	Dist(a, b) >= 0
//	Dist(a, b) == 0 if and only if a equals b
//	Dist(a, b) == Dist(b, a)
//	Dist(a, b) <= Dist(a, c) + Dist(c, b)
//
// Implementations are immutable after construction and safe for concurrent use.
type Metric[T any] interface {
	Dist(a, b T) (float64, error)
}

// Unimplemented is the bare metric contract. Its Dist always fails with
// ErrNotImplemented. Embed it to declare intent before Dist exists.
type Unimplemented[T any] struct{}

// Dist implements Metric.
func (Unimplemented[T]) Dist(T, T) (float64, error) { return 0, ErrNotImplemented }

// Kind returns KindUnknown.
func (Unimplemented[T]) Kind() Kind { return KindUnknown }

// Kind identifies a metric family.
type Kind int

const (
	KindUnknown Kind = iota
	KindDiscrete
	KindHamming
	KindLp
	KindPAdic
)

func (k Kind) String() string {
	switch k {
	case KindDiscrete:
		return "discrete"
	case KindHamming:
		return "hamming"
	case KindLp:
		return "lp"
	case KindPAdic:
		return "padic"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ParseKind resolves a kind by name. It accepts the canonical names plus the
// common aliases of the Lp family.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "discrete":
		return KindDiscrete, nil
	case "hamming":
		return KindHamming, nil
	case "lp", "minkowski":
		return KindLp, nil
	case "padic", "p-adic":
		return KindPAdic, nil
	default:
		return KindUnknown, fmt.Errorf("unknown metric kind %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k <= KindUnknown || k > KindPAdic {
		return nil, fmt.Errorf("cannot marshal metric kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// kindOf returns the kind reported by m, or KindUnknown.
func kindOf(m any) Kind {
	if k, ok := m.(interface{ Kind() Kind }); ok {
		return k.Kind()
	}
	return KindUnknown
}
