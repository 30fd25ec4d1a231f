package metrics

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point element type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Infinity selects the max (Chebyshev) norm when passed as the order of an
// Lp metric.
var Infinity = math.Inf(1)

// LpNorm is the distance induced by the Lp norm over vectors of T.
// Arithmetic is carried out in float64.
type LpNorm[T Number] struct {
	p float64
}

// NewLpNorm returns the Lp metric of order p. p must be at least 1 or
// Infinity; smaller orders violate the triangle inequality.
func NewLpNorm[T Number](p float64) (*LpNorm[T], error) {
	if math.IsNaN(p) || p < 1 {
		return nil, &ErrInvalidParameter{Kind: KindLp, Param: "p", Value: p}
	}
	return &LpNorm[T]{p: p}, nil
}

// NewTaxicab returns the L1 (Manhattan) metric.
func NewTaxicab[T Number]() *LpNorm[T] { return &LpNorm[T]{p: 1} }

// NewEuclidean returns the L2 metric.
func NewEuclidean[T Number]() *LpNorm[T] { return &LpNorm[T]{p: 2} }

// NewChebyshev returns the max-norm metric.
func NewChebyshev[T Number]() *LpNorm[T] { return &LpNorm[T]{p: Infinity} }

// P returns the order of the norm.
func (m *LpNorm[T]) P() float64 { return m.p }

// Kind returns KindLp.
func (m *LpNorm[T]) Kind() Kind { return KindLp }

// Dist implements Metric. Vectors of different dimensionality are rejected
// with *ErrDimensionMismatch.
func (m *LpNorm[T]) Dist(a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	var maxDiff float64
	for i := range a {
		maxDiff = max(maxDiff, absDiff(a[i], b[i]))
	}
	if maxDiff == 0 || math.IsInf(m.p, 1) || math.IsInf(maxDiff, 1) {
		return maxDiff, nil
	}

	// Terms are scaled by the largest difference so that raising them to p
	// neither underflows to 0 nor overflows to +Inf.
	switch m.p {
	case 1:
		var sum float64
		for i := range a {
			sum += absDiff(a[i], b[i])
		}
		return sum, nil
	case 2:
		var sum float64
		for i := range a {
			r := absDiff(a[i], b[i]) / maxDiff
			sum += r * r
		}
		return maxDiff * math.Sqrt(sum), nil
	default:
		var sum float64
		for i := range a {
			sum += math.Pow(absDiff(a[i], b[i])/maxDiff, m.p)
		}
		return maxDiff * math.Pow(sum, 1/m.p), nil
	}
}

// absDiff converts before subtracting so unsigned and narrow integer types
// do not wrap.
func absDiff[T Number](x, y T) float64 {
	return math.Abs(float64(x) - float64(y))
}
