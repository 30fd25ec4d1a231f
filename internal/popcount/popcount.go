// Package popcount counts set bits across byte slices.
package popcount

import (
	"encoding/binary"
	"math/bits"
)

// Xor returns the number of set bits in a XOR b.
// Only the common prefix of a and b is inspected; callers check lengths.
func Xor(a, b []byte) int {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	total := 0
	i := 0
	for ; i+8 <= n; i += 8 {
		v1 := binary.LittleEndian.Uint64(a[i:])
		v2 := binary.LittleEndian.Uint64(b[i:])
		total += bits.OnesCount64(v1 ^ v2)
	}
	for ; i < n; i++ {
		total += bits.OnesCount8(a[i] ^ b[i])
	}
	return total
}
