package metrics

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned by Unimplemented.Dist.
	ErrNotImplemented = errors.New("dist not implemented")

	// ErrInvalidConfiguration is matched by every *ErrInvalidParameter.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ErrInvalidParameter indicates a constructor or operand value outside the
// documented domain of a metric.
type ErrInvalidParameter struct {
	Kind  Kind
	Param string
	Value any
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter for %s metric: %s=%v", e.Kind, e.Param, e.Value)
}

// Is reports whether target is ErrInvalidConfiguration.
func (e *ErrInvalidParameter) Is(target error) bool { return target == ErrInvalidConfiguration }

// ErrDimensionMismatch indicates Lp operands of differing dimensionality.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrLengthMismatch indicates Hamming operands of differing length.
type ErrLengthMismatch struct {
	Left  int
	Right int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("incompatible lengths: %d and %d", e.Left, e.Right)
}

// ErrUnsupportedKind indicates a metric kind that does not apply to the
// requested operand domain.
type ErrUnsupportedKind struct {
	Kind   Kind
	Domain string
}

func (e *ErrUnsupportedKind) Error() string {
	return fmt.Sprintf("unsupported metric %s for %s operands", e.Kind, e.Domain)
}
