package metrics

import (
	"bytes"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicksonwcmak/metrics/testutil"
)

func TestStringHamming(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"Classic", "karolin", "kathrin", 3},
		{"Identical", "abc", "abc", 0},
		{"Empty", "", "", 0},
		{"Runes", "héllo", "hallo", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StringHamming{}.Dist(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("LengthMismatch", func(t *testing.T) {
		d, err := StringHamming{}.Dist("ab", "abc")
		require.Error(t, err)
		assert.Zero(t, d)

		var lm *ErrLengthMismatch
		require.ErrorAs(t, err, &lm)
		assert.Equal(t, 2, lm.Left)
		assert.Equal(t, 3, lm.Right)
	})

	t.Run("Axioms", func(t *testing.T) {
		words := testutil.NewRNG(11).Strings(24, 5, "ab")
		eq := func(a, b string) bool { return a == b }
		assert.NoError(t, testutil.CheckAxioms(StringHamming{}, words, eq, 0))
	})
}

func TestHamming(t *testing.T) {
	m := Hamming[int]{}

	d, err := m.Dist([]int{1, 2, 3, 4}, []int{1, 0, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)

	_, err = m.Dist([]int{1}, nil)
	var lm *ErrLengthMismatch
	assert.ErrorAs(t, err, &lm)
}

func TestBitHamming(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []byte
		expected float64
	}{
		{"Simple", []byte{0xFF, 0x00}, []byte{0x00, 0xFF}, 16},
		{"Identical", []byte{0xAA, 0x55}, []byte{0xAA, 0x55}, 0},
		{"Partial", []byte{0b11110000}, []byte{0b11111111}, 4},
		{"Empty", []byte{}, []byte{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BitHamming{}.Dist(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := BitHamming{}.Dist([]byte{1}, []byte{1, 2})
	var lm *ErrLengthMismatch
	assert.ErrorAs(t, err, &lm)

	t.Run("Axioms", func(t *testing.T) {
		points := testutil.NewRNG(11).Bytes(16, 4)
		points = append(points, bytes.Clone(points[0]), make([]byte, 4))
		assert.NoError(t, testutil.CheckAxioms(BitHamming{}, points, bytes.Equal, 0))
	})
}

func TestBitsetHamming(t *testing.T) {
	a := bitset.New(16).Set(1).Set(3).Set(5)
	b := bitset.New(16).Set(1).Set(4)

	d, err := BitsetHamming{}.Dist(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)

	d, err = BitsetHamming{}.Dist(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = BitsetHamming{}.Dist(bitset.New(8), bitset.New(16))
	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 8, lm.Left)
	assert.Equal(t, 16, lm.Right)

	t.Run("Axioms", func(t *testing.T) {
		points := []*bitset.BitSet{
			bitset.New(16),
			bitset.New(16).Set(0),
			bitset.New(16).Set(0).Set(15),
			bitset.New(16).Set(3).Set(7).Set(11),
			bitset.New(16).Set(0).Set(3).Set(7).Set(11).Set(15),
			bitset.New(16).Set(15),
		}
		eq := func(a, b *bitset.BitSet) bool { return a.Equal(b) }
		assert.NoError(t, testutil.CheckAxioms(BitsetHamming{}, points, eq, 0))
	})
}

func TestBitmapHamming(t *testing.T) {
	a := roaring.BitmapOf(1, 2, 3, 1000000)
	b := roaring.BitmapOf(2, 3, 4)

	d, err := BitmapHamming{}.Dist(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)

	d, err = BitmapHamming{}.Dist(a, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)

	// Operands are not modified.
	assert.Equal(t, uint64(4), a.GetCardinality())
	assert.Equal(t, uint64(3), b.GetCardinality())

	t.Run("Axioms", func(t *testing.T) {
		points := []*roaring.Bitmap{
			roaring.New(),
			roaring.BitmapOf(1),
			roaring.BitmapOf(1, 2),
			roaring.BitmapOf(2, 70000),
			roaring.BitmapOf(1, 2, 70000),
		}
		eq := func(a, b *roaring.Bitmap) bool { return a.Equals(b) }
		assert.NoError(t, testutil.CheckAxioms(BitmapHamming{}, points, eq, 0))
	})
}
