package metrics

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicksonwcmak/metrics/testutil"
)

func TestDiscrete(t *testing.T) {
	t.Run("Integers", func(t *testing.T) {
		m := Discrete[int]{}

		d, err := m.Dist(5, 5)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)

		d, err = m.Dist(5, 7)
		require.NoError(t, err)
		assert.Equal(t, 1.0, d)
	})

	t.Run("Strings", func(t *testing.T) {
		d, err := Discrete[string]{}.Dist("x", "y")
		require.NoError(t, err)
		assert.Equal(t, 1.0, d)
	})

	t.Run("Axioms", func(t *testing.T) {
		points := testutil.NewRNG(3).Int64s(20, -3, 3)
		eq := func(a, b int64) bool { return a == b }
		assert.NoError(t, testutil.CheckAxioms(Discrete[int64]{}, points, eq, 0))
	})
}

func TestDiscreteFunc(t *testing.T) {
	m, err := NewDiscreteFunc(slices.Equal[[]int])
	require.NoError(t, err)
	assert.Equal(t, KindDiscrete, m.Kind())

	d, err := m.Dist([]int{1, 2}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	d, err = m.Dist([]int{1, 2}, []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	_, err = NewDiscreteFunc[[]int](nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
