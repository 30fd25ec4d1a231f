package metrics

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/nicksonwcmak/metrics/internal/conv"
)

// PAdic is the p-adic metric over integers of type T:
//
//	Dist(a, b) = p^(-v(|a-b|))
//
// where v is the p-adic valuation. Composite bases are accepted; the result is
// still an ultrametric.
type PAdic[T constraints.Integer] struct {
	p    uint64
	base float64
}

// NewPAdic returns the p-adic metric for base p. p must be at least 2.
func NewPAdic[T constraints.Integer](p int) (*PAdic[T], error) {
	if p < 2 {
		return nil, &ErrInvalidParameter{Kind: KindPAdic, Param: "p", Value: p}
	}
	up, err := conv.IntToUint64(p)
	if err != nil {
		return nil, &ErrInvalidParameter{Kind: KindPAdic, Param: "p", Value: p}
	}
	return &PAdic[T]{p: up, base: float64(up)}, nil
}

// P returns the base.
func (m *PAdic[T]) P() uint64 { return m.p }

// Kind returns KindPAdic.
func (m *PAdic[T]) Kind() Kind { return KindPAdic }

// Valuation returns the number of times p divides n exactly, or +Inf for 0.
func (m *PAdic[T]) Valuation(n T) float64 {
	return valuation(magnitude(n), m.p)
}

// Dist implements Metric. It never fails.
func (m *PAdic[T]) Dist(a, b T) (float64, error) {
	return math.Pow(m.base, -valuation(distance(a, b), m.p)), nil
}

func valuation(n, p uint64) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	var v int
	for n%p == 0 {
		n /= p
		v++
	}
	return float64(v)
}

// magnitude returns |n| in uint64. Negation happens after conversion so the
// minimum value of a signed type is handled.
func magnitude[T constraints.Integer](n T) uint64 {
	if n < 0 {
		return -uint64(n)
	}
	return uint64(n)
}

// distance returns |a-b| without overflow: the true difference of any two
// values of a 64-bit or narrower integer type fits in uint64.
func distance[T constraints.Integer](a, b T) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

var bigTwo = big.NewInt(2)

// BigPAdic is the p-adic metric over arbitrary-precision integers.
type BigPAdic struct {
	p    *big.Int
	base float64
	logp float64
}

// NewBigPAdic returns the p-adic metric for base p. p must be at least 2.
// p is copied.
func NewBigPAdic(p *big.Int) (*BigPAdic, error) {
	if p == nil || p.Cmp(bigTwo) < 0 {
		return nil, &ErrInvalidParameter{Kind: KindPAdic, Param: "p", Value: p}
	}
	f := new(big.Float).SetInt(p)
	base, _ := f.Float64()
	mant := new(big.Float)
	exp := f.MantExp(mant)
	frac, _ := mant.Float64()
	return &BigPAdic{
		p:    new(big.Int).Set(p),
		base: base,
		logp: math.Log(frac) + float64(exp)*math.Ln2,
	}, nil
}

// P returns a copy of the base.
func (m *BigPAdic) P() *big.Int { return new(big.Int).Set(m.p) }

// Kind returns KindPAdic.
func (m *BigPAdic) Kind() Kind { return KindPAdic }

// Valuation returns the number of times p divides n exactly, or +Inf for 0.
// A nil n has no valuation and yields NaN. n is not modified.
func (m *BigPAdic) Valuation(n *big.Int) float64 {
	if n == nil {
		return math.NaN()
	}
	if n.Sign() == 0 {
		return math.Inf(1)
	}
	q := new(big.Int).Abs(n)
	quo, rem := new(big.Int), new(big.Int)
	var v int
	for {
		quo.QuoRem(q, m.p, rem)
		if rem.Sign() != 0 {
			return float64(v)
		}
		q, quo = quo, q
		v++
	}
}

// Dist implements Metric. Nil operands are rejected with *ErrInvalidParameter.
//
// The result is p^-v rounded to float64, so it becomes 0 once p^v exceeds
// the reciprocal of the smallest subnormal (v*ln(p) > ~744.4). For p above
// roughly 10^323 every nonzero difference divisible by p therefore has
// distance 0, while differences not divisible by p keep distance 1.
func (m *BigPAdic) Dist(a, b *big.Int) (float64, error) {
	if a == nil {
		return 0, &ErrInvalidParameter{Kind: KindPAdic, Param: "a", Value: nil}
	}
	if b == nil {
		return 0, &ErrInvalidParameter{Kind: KindPAdic, Param: "b", Value: nil}
	}
	v := m.Valuation(new(big.Int).Sub(a, b))
	if math.IsInf(m.base, 1) {
		// p overflows float64; work in log space.
		return math.Exp(-v * m.logp), nil
	}
	return math.Pow(m.base, -v), nil
}
