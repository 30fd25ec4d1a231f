package metrics

// Discrete is the discrete metric: 0 for equal values, 1 otherwise.
type Discrete[T comparable] struct{}

// Dist implements Metric. It never fails.
func (Discrete[T]) Dist(a, b T) (float64, error) {
	if a == b {
		return 0, nil
	}
	return 1, nil
}

// Kind returns KindDiscrete.
func (Discrete[T]) Kind() Kind { return KindDiscrete }

// DiscreteFunc is the discrete metric for values that are not comparable with
// ==, such as slices. Equality is decided by a caller-supplied function, which
// must be reflexive and symmetric.
type DiscreteFunc[T any] struct {
	eq func(a, b T) bool
}

// NewDiscreteFunc returns a discrete metric using eq for equality.
func NewDiscreteFunc[T any](eq func(a, b T) bool) (*DiscreteFunc[T], error) {
	if eq == nil {
		return nil, &ErrInvalidParameter{Kind: KindDiscrete, Param: "eq", Value: nil}
	}
	return &DiscreteFunc[T]{eq: eq}, nil
}

// Dist implements Metric. It never fails.
func (m *DiscreteFunc[T]) Dist(a, b T) (float64, error) {
	if m.eq(a, b) {
		return 0, nil
	}
	return 1, nil
}

// Kind returns KindDiscrete.
func (m *DiscreteFunc[T]) Kind() Kind { return KindDiscrete }
