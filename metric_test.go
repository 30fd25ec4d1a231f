package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draft struct {
	Unimplemented[string]
}

func TestUnimplemented(t *testing.T) {
	var m Metric[string] = draft{}

	d, err := m.Dist("a", "b")
	require.ErrorIs(t, err, ErrNotImplemented)
	assert.Zero(t, d)
	assert.Equal(t, KindUnknown, kindOf(m))
}

func TestKind(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "discrete", KindDiscrete.String())
		assert.Equal(t, "hamming", KindHamming.String())
		assert.Equal(t, "lp", KindLp.String())
		assert.Equal(t, "padic", KindPAdic.String())
		assert.Equal(t, "unknown", KindUnknown.String())
		assert.Equal(t, "Unknown(42)", Kind(42).String())
	})

	t.Run("Parse", func(t *testing.T) {
		tests := map[string]Kind{
			"discrete":  KindDiscrete,
			"Hamming":   KindHamming,
			" lp ":      KindLp,
			"minkowski": KindLp,
			"p-adic":    KindPAdic,
		}
		for in, want := range tests {
			got, err := ParseKind(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}

		_, err := ParseKind("cosine")
		assert.Error(t, err)
	})

	t.Run("Text", func(t *testing.T) {
		b, err := KindPAdic.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "padic", string(b))

		var k Kind
		require.NoError(t, k.UnmarshalText([]byte("hamming")))
		assert.Equal(t, KindHamming, k)

		_, err = KindUnknown.MarshalText()
		assert.Error(t, err)
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindDiscrete, kindOf(Discrete[int]{}))
	assert.Equal(t, KindHamming, kindOf(StringHamming{}))
	assert.Equal(t, KindLp, kindOf(NewEuclidean[float64]()))
	assert.Equal(t, KindUnknown, kindOf(struct{}{}))
}
