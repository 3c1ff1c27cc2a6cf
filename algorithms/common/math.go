package common

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// MaxBufferLength is the largest number of samples a Buffer may hold.
const MaxBufferLength = math.MaxInt32

// IsPowerOfTwo checks if n is a power of 2
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n.
//
// It fails with ErrSizeOverflow for n == 0 and for any n greater than half of
// MaxBufferLength, where the padded length could no longer be represented.
func NextPowerOfTwo(n int) (int, error) {
	return NextPowerOfTwoWithin(n, MaxBufferLength)
}

// NextPowerOfTwoWithin is NextPowerOfTwo against an explicit length limit.
func NextPowerOfTwoWithin(n, limit int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: cannot pad a series of %d samples", ErrSizeOverflow, n)
	}
	if n > limit/2 {
		return 0, fmt.Errorf("%w: %d samples exceeds the maximum of %d", ErrSizeOverflow, n, limit/2)
	}

	power := 1
	for power < n {
		power <<= 1
	}
	return power, nil
}

// Mean calculates the arithmetic mean of a float32 slice using gonum.
// Accumulation happens in float64.
func Mean(data []float32) float32 {
	if len(data) == 0 {
		return 0.0
	}

	wide := make([]float64, len(data))
	for i, v := range data {
		wide[i] = float64(v)
	}
	return float32(stat.Mean(wide, nil))
}
