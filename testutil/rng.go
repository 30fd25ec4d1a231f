package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformVectors generates random vectors with values in range [-1, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()*2 - 1
		}
		vectors[i] = vec
	}

	return vectors
}

// IntVectors generates random integer vectors with values in [minVal, maxVal).
func (r *RNG) IntVectors(num, dimensions int, minVal, maxVal int) [][]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]int, num)
	for i := range num {
		vec := make([]int, dimensions)
		for j := range vec {
			vec[j] = minVal + r.rand.Intn(maxVal-minVal)
		}
		vectors[i] = vec
	}

	return vectors
}

// Strings generates num strings of exactly length runes drawn from alphabet.
func (r *RNG) Strings(num, length int, alphabet string) []string {
	letters := []rune(alphabet)

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, num)
	buf := make([]rune, length)
	for i := range num {
		for j := range buf {
			buf[j] = letters[r.rand.Intn(len(letters))]
		}
		out[i] = string(buf)
	}

	return out
}

// Bytes generates num byte slices of length n.
func (r *RNG) Bytes(num, n int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]byte, num)
	for i := range num {
		b := make([]byte, n)
		_, _ = r.rand.Read(b)
		out[i] = b
	}

	return out
}

// Int64s generates num integers in [minVal, maxVal).
func (r *RNG) Int64s(num int, minVal, maxVal int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, num)
	for i := range num {
		out[i] = minVal + r.rand.Int63n(maxVal-minVal)
	}

	return out
}
