package shared

import (
	"math/bits"
)

// NumGroups returns the number of groups needed to hold numBits cells.
func NumGroups(numBits uint64) uint64 {
	size := numBits / GroupBits
	if numBits%GroupBits != 0 {
		size++
	}
	return size
}

// Uint64MulOverflow reports whether a*b overflows uint64.
func Uint64MulOverflow(a, b uint64) bool {
	hi, _ := bits.Mul64(a, b)
	return hi != 0
}

// ValidateDimensions returns a DimensionsError if a rows x cols grid
// cannot be addressed with uint64 arithmetic.
func ValidateDimensions(rows, cols uint64) error {
	if Uint64MulOverflow(rows, cols) {
		return DimensionsError{Rows: rows, Cols: cols}
	}
	return nil
}
