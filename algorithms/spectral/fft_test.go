package spectral

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-swell/algorithms/common"
)

var allBackends = []Backend{BackendRadix2, BackendGoDSP, BackendGonum}

func newFFT(backend Backend) *FFT {
	f := NewFFT()
	f.SetBackend(backend)
	return f
}

func TestFFTZerosGiveZeros(t *testing.T) {
	for _, backend := range allBackends {
		mag, err := newFFT(backend).Compute(make([]float32, 12))
		require.NoError(t, err)
		require.Len(t, mag, 16)
		for i, v := range mag {
			assert.InDelta(t, 0, v, 1e-12, "%s bin %d", backend, i)
		}
	}
}

func TestFFTKnownSequence(t *testing.T) {
	// DFT of [1 2 1 0] is [4, -2i, 0, 2i].
	mag, err := NewFFT().Compute([]float32{1, 2, 1, 0})
	require.NoError(t, err)

	want := []float32{4, 2, 0, 2}
	for i := range want {
		assert.InDelta(t, want[i], mag[i], 1e-6, "bin %d", i)
	}
}

func TestFFTImpulseIsFlat(t *testing.T) {
	x := make([]float32, 32)
	x[0] = 1

	mag, err := NewFFT().Compute(x)
	require.NoError(t, err)
	for i, v := range mag {
		assert.InDelta(t, 1, v, 1e-6, "bin %d", i)
	}
}

func TestFFTPadsToPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{5, 8},
		{16, 16},
		{17, 32},
	}

	for _, tt := range tests {
		mag, err := NewFFT().Compute(make([]float32, tt.n))
		require.NoError(t, err)
		assert.Len(t, mag, tt.want, "n=%d", tt.n)
	}
}

func TestFFTSingleSample(t *testing.T) {
	mag, err := NewFFT().Compute([]float32{-3})
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, mag)
}

func TestFFTEmptyInput(t *testing.T) {
	_, err := NewFFT().Compute(nil)
	assert.ErrorIs(t, err, common.ErrSizeOverflow)
}

func TestFFTRespectsLimit(t *testing.T) {
	f := NewFFT()
	f.SetLimit(8)

	_, err := f.Compute(make([]float32, 9))
	assert.ErrorIs(t, err, common.ErrOutOfMemory)

	for _, n := range []int{5, 8} {
		mag, err := f.Compute(make([]float32, n))
		require.NoError(t, err, "n=%d", n)
		assert.Len(t, mag, 8)
	}
}

func TestFFTLimitAppliesToPaddedLength(t *testing.T) {
	for _, backend := range allBackends {
		f := newFFT(backend)
		f.SetLimit(12)

		for _, n := range []int{7, 8} {
			mag, err := f.Compute(make([]float32, n))
			require.NoError(t, err, "%s n=%d", backend, n)
			assert.Len(t, mag, 8)
		}

		_, err := f.Compute(make([]float32, 9))
		assert.ErrorIs(t, err, common.ErrOutOfMemory, "%s", backend)
	}
}

func TestFFTBackendsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	x := make([]float32, 100)
	for i := range x {
		x[i] = float32(rng.NormFloat64())
	}

	reference, err := newFFT(BackendGonum).Compute(x)
	require.NoError(t, err)
	require.Len(t, reference, 128)

	for _, backend := range []Backend{BackendRadix2, BackendGoDSP} {
		mag, err := newFFT(backend).Compute(x)
		require.NoError(t, err)
		require.Len(t, mag, len(reference))
		for i := range reference {
			assert.InDelta(t, reference[i], mag[i], 1e-3, "%s bin %d", backend, i)
		}
	}
}

func TestFFTRealInputIsMirrored(t *testing.T) {
	x := []float32{0.3, -1.2, 4, 2.5, 0, 1, -0.7, 3}
	mag, err := NewFFT().Compute(x)
	require.NoError(t, err)

	n := len(mag)
	for k := 1; k < n/2; k++ {
		assert.InDelta(t, mag[k], mag[n-k], 1e-5, "bin %d", k)
	}
}

func TestParseBackend(t *testing.T) {
	for _, b := range allBackends {
		got, err := ParseBackend(string(b))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}

	_, err := ParseBackend("fftw")
	assert.Error(t, err)
}

func TestSetBackendFallsBack(t *testing.T) {
	f := NewFFT()
	f.SetBackend("nope")
	assert.Equal(t, BackendRadix2, f.Backend())
}

func TestTwiddle(t *testing.T) {
	w := twiddle(1, 4)
	assert.InDelta(t, 0, real(w), 1e-7)
	assert.InDelta(t, -1, imag(w), 1e-7)

	w = twiddle(0, 8)
	assert.Equal(t, complex64(1), w)

	w = twiddle(1, 8)
	assert.InDelta(t, math.Sqrt2/2, real(w), 1e-7)
	assert.InDelta(t, -math.Sqrt2/2, imag(w), 1e-7)
}
