package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Distancer is the method set of a metric.
type Distancer[T any] interface {
	Dist(a, b T) (float64, error)
}

// Axiom names a metric property.
type Axiom string

const (
	NonNegativity Axiom = "non-negativity"
	Identity      Axiom = "identity of indiscernibles"
	Symmetry      Axiom = "symmetry"
	Triangle      Axiom = "triangle inequality"
)

// Violation reports one failed property for a pair or triple of sample
// indices. C is -1 unless the axiom is Triangle.
type Violation struct {
	Axiom   Axiom
	A, B, C int
	Detail  string
}

func (v *Violation) Error() string {
	if v.C >= 0 {
		return fmt.Sprintf("%s violated at (%d, %d, %d): %s", v.Axiom, v.A, v.B, v.C, v.Detail)
	}
	return fmt.Sprintf("%s violated at (%d, %d): %s", v.Axiom, v.A, v.B, v.Detail)
}

// CheckAxioms evaluates m over every pair and triple of points and returns
// the joined violations, or nil. equal decides identity; tol absorbs
// floating-point rounding in the symmetry and triangle checks.
// Errors returned by m abort the check.
func CheckAxioms[T any](m Distancer[T], points []T, equal func(a, b T) bool, tol float64) error {
	d, err := distanceMatrix(m, points)
	if err != nil {
		return err
	}
	var errs []error
	for i := range points {
		errs = append(errs, checkAnchor(d, points, equal, tol, i)...)
	}
	return errors.Join(errs...)
}

// CheckAxiomsParallel is CheckAxioms with the distance matrix computed by up
// to workers goroutines sharing m. It doubles as a check that m is safe for
// concurrent use.
func CheckAxiomsParallel[T any](ctx context.Context, m Distancer[T], points []T, equal func(a, b T) bool, tol float64, workers int) error {
	n := len(points)
	d := make([][]float64, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := distanceRow(m, points, i)
			if err != nil {
				return err
			}
			d[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	g = new(errgroup.Group)
	g.SetLimit(max(workers, 1))
	for i := range n {
		g.Go(func() error {
			v := checkAnchor(d, points, equal, tol, i)
			mu.Lock()
			errs = append(errs, v...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

func distanceMatrix[T any](m Distancer[T], points []T) ([][]float64, error) {
	d := make([][]float64, len(points))
	for i := range points {
		row, err := distanceRow(m, points, i)
		if err != nil {
			return nil, err
		}
		d[i] = row
	}
	return d, nil
}

func distanceRow[T any](m Distancer[T], points []T, i int) ([]float64, error) {
	row := make([]float64, len(points))
	for j := range points {
		v, err := m.Dist(points[i], points[j])
		if err != nil {
			return nil, fmt.Errorf("dist(%d, %d): %w", i, j, err)
		}
		row[j] = v
	}
	return row, nil
}

// checkAnchor checks every pair (i, j) and triple (i, j, k) for a fixed i.
func checkAnchor[T any](d [][]float64, points []T, equal func(a, b T) bool, tol float64, i int) []error {
	var errs []error
	for j := range points {
		dij := d[i][j]
		if dij < 0 {
			errs = append(errs, &Violation{Axiom: NonNegativity, A: i, B: j, C: -1, Detail: fmt.Sprintf("dist=%g", dij)})
		}
		if eq := equal(points[i], points[j]); eq != (dij == 0) {
			errs = append(errs, &Violation{Axiom: Identity, A: i, B: j, C: -1, Detail: fmt.Sprintf("equal=%t dist=%g", eq, dij)})
		}
		if diff := dij - d[j][i]; diff > tol || diff < -tol {
			errs = append(errs, &Violation{Axiom: Symmetry, A: i, B: j, C: -1, Detail: fmt.Sprintf("%g != %g", dij, d[j][i])})
		}
		for k := range points {
			if dij > d[i][k]+d[k][j]+tol {
				errs = append(errs, &Violation{Axiom: Triangle, A: i, B: j, C: k, Detail: fmt.Sprintf("%g > %g + %g", dij, d[i][k], d[k][j])})
			}
		}
	}
	return errs
}
