package metrics

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/nicksonwcmak/metrics/internal/popcount"
)

// Hamming counts the positions at which two equal-length sequences differ.
type Hamming[E comparable] struct{}

// Dist implements Metric. Sequences of different length are rejected with
// *ErrLengthMismatch.
func (Hamming[E]) Dist(a, b []E) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrLengthMismatch{Left: len(a), Right: len(b)}
	}
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return float64(n), nil
}

// Kind returns KindHamming.
func (Hamming[E]) Kind() Kind { return KindHamming }

// StringHamming is the Hamming distance between strings, compared rune by rune.
type StringHamming struct{}

// Dist implements Metric. Strings with different rune counts are rejected
// with *ErrLengthMismatch.
func (StringHamming) Dist(a, b string) (float64, error) {
	return Hamming[rune]{}.Dist([]rune(a), []rune(b))
}

// Kind returns KindHamming.
func (StringHamming) Kind() Kind { return KindHamming }

// BitHamming is the number of differing bits between two byte slices of
// equal length.
type BitHamming struct{}

// Dist implements Metric.
func (BitHamming) Dist(a, b []byte) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrLengthMismatch{Left: len(a), Right: len(b)}
	}
	return float64(popcount.Xor(a, b)), nil
}

// Kind returns KindHamming.
func (BitHamming) Kind() Kind { return KindHamming }

// BitsetHamming is the number of differing bits between two bit sets of the
// same length. A nil set is the empty set of length 0.
type BitsetHamming struct{}

// Dist implements Metric.
func (BitsetHamming) Dist(a, b *bitset.BitSet) (float64, error) {
	if a == nil {
		a = bitset.New(0)
	}
	if b == nil {
		b = bitset.New(0)
	}
	if a.Len() != b.Len() {
		return 0, &ErrLengthMismatch{Left: int(a.Len()), Right: int(b.Len())}
	}
	return float64(a.SymmetricDifferenceCardinality(b)), nil
}

// Kind returns KindHamming.
func (BitsetHamming) Kind() Kind { return KindHamming }

// BitmapHamming is the cardinality of the symmetric difference of two roaring
// bitmaps. Bitmaps have no fixed length, so any two are comparable. A nil
// bitmap is empty.
type BitmapHamming struct{}

// Dist implements Metric.
func (BitmapHamming) Dist(a, b *roaring.Bitmap) (float64, error) {
	if a == nil {
		a = roaring.New()
	}
	if b == nil {
		b = roaring.New()
	}
	return float64(roaring.Xor(a, b).GetCardinality()), nil
}

// Kind returns KindHamming.
func (BitmapHamming) Kind() Kind { return KindHamming }
