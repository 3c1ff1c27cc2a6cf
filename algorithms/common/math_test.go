package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{8, 8},
		{9, 16},
		{1000, 1024},
		{MaxBufferLength / 2, 1 << 30},
	}

	for _, tt := range tests {
		got, err := NextPowerOfTwo(tt.n)
		require.NoError(t, err, "n=%d", tt.n)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func TestNextPowerOfTwoRejectsZero(t *testing.T) {
	_, err := NextPowerOfTwo(0)
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestNextPowerOfTwoRejectsOversize(t *testing.T) {
	_, err := NextPowerOfTwo(MaxBufferLength/2 + 1)
	assert.ErrorIs(t, err, ErrSizeOverflow)

	_, err = NextPowerOfTwoWithin(9, 16)
	assert.ErrorIs(t, err, ErrSizeOverflow)

	got, err := NextPowerOfTwoWithin(8, 16)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, IsPowerOfTwo(1))
	assert.True(t, IsPowerOfTwo(64))
	assert.False(t, IsPowerOfTwo(0))
	assert.False(t, IsPowerOfTwo(12))
}

func TestMean(t *testing.T) {
	assert.Equal(t, float32(0), Mean(nil))
	assert.InDelta(t, 2.5, Mean([]float32{1, 2, 3, 4}), 1e-6)
}
