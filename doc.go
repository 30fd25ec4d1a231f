// Package metrics provides distance functions over metric spaces.
//
// Every metric implements one operation:
//
//	Dist(a, b T) (float64, error)
//
// and satisfies non-negativity, identity of indiscernibles, symmetry and the
// triangle inequality for all operands in its domain.
//
// # Metrics
//
//   - Discrete: 0 for equal values, 1 otherwise.
//   - Hamming: position-wise mismatch count over equal-length sequences
//     (StringHamming for strings, BitHamming, BitsetHamming and
//     BitmapHamming for bit sets).
//   - LpNorm: (sum |a_i - b_i|^p)^(1/p), or the max norm when p is Infinity.
//   - PAdic and BigPAdic: p^(-v(|a-b|)) where v is the p-adic valuation.
//
// # Usage
//
//	euclid := metrics.NewEuclidean[float64]()
//	d, err := euclid.Dist([]float64{0, 0}, []float64{3, 4}) // 5
//
//	padic, err := metrics.NewPAdic[int64](2)
//	d, _ = padic.Dist(8, 0) // 0.125
//
// # Selection by Name
//
// A Config names a kind and its parameter; the New*Metric constructors build
// the matching metric for an operand domain:
//
//	cfg, err := metrics.LoadConfig([]byte(`{"kind":"lp","p":"inf"}`), nil)
//	m, err := metrics.NewVectorMetric(cfg, metrics.WithCollector(c))
//
// # Errors
//
// Parameters outside a metric's domain fail at construction with
// *ErrInvalidParameter (errors.Is ErrInvalidConfiguration). Operands of
// differing size fail with *ErrDimensionMismatch (Lp) or *ErrLengthMismatch
// (Hamming). All metrics are immutable and safe for concurrent use.
package metrics
