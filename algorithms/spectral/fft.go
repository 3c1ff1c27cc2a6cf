package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/RyanBlaney/sonido-swell/algorithms/common"
)

// Backend selects the transform implementation behind FFT.
type Backend string

const (
	// BackendRadix2 is the recursive decimation-in-time transform in this package.
	BackendRadix2 Backend = "radix2"
	// BackendGoDSP delegates to mjibson/go-dsp.
	BackendGoDSP Backend = "godsp"
	// BackendGonum delegates to gonum's fourier package.
	BackendGonum Backend = "gonum"
)

// ParseBackend converts a backend name into a Backend.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(name); b {
	case BackendRadix2, BackendGoDSP, BackendGonum:
		return b, nil
	default:
		return "", fmt.Errorf("unknown transform backend %q", name)
	}
}

// FFT computes magnitude spectra of real-valued series.
//
// Input is zero-padded to the next power of two, so the output always has
// NextPowerOfTwo(len(x)) bins. Bins above N/2 mirror the lower half and are
// kept as-is.
type FFT struct {
	backend Backend
	limit   int
}

// NewFFT creates an FFT calculator using the radix-2 backend
func NewFFT() *FFT {
	return &FFT{
		backend: BackendRadix2,
		limit:   common.MaxBufferLength,
	}
}

// SetBackend selects the transform implementation. Unknown values fall back to radix-2.
func (f *FFT) SetBackend(backend Backend) {
	if _, err := ParseBackend(string(backend)); err != nil {
		backend = BackendRadix2
	}
	f.backend = backend
}

// SetLimit sets the largest padded length the transform will allocate.
func (f *FFT) SetLimit(limit int) {
	if limit <= 0 || limit > common.MaxBufferLength {
		limit = common.MaxBufferLength
	}
	f.limit = limit
}

// Backend returns the active backend
func (f *FFT) Backend() Backend {
	return f.backend
}

// Compute returns the magnitude spectrum of x.
//
// The zero-padded copy of x is held in a common.Buffer bounded by the
// transform limit, so padding past the limit fails with ErrOutOfMemory.
// Input that already has a power-of-two length is not padded.
func (f *FFT) Compute(x []float32) ([]float32, error) {
	size, err := paddedLength(len(x))
	if err != nil {
		return nil, err
	}

	padded := common.NewBufferWithLimit(f.limit)
	defer padded.Release()

	if err := padded.Load(x); err != nil {
		return nil, err
	}
	if err := padded.ExtendTo(size); err != nil {
		return nil, err
	}

	switch f.backend {
	case BackendGoDSP:
		return goDSPMagnitude(padded.Samples()), nil
	case BackendGonum:
		return gonumMagnitude(padded.Samples()), nil
	default:
		return radix2Magnitude(padded.Samples()), nil
	}
}

func paddedLength(n int) (int, error) {
	if common.IsPowerOfTwo(n) {
		return n, nil
	}
	return common.NextPowerOfTwo(n)
}

// radix2Magnitude transforms x, whose length must be a power of two.
func radix2Magnitude(x []float32) []float32 {
	size := len(x)
	in := make([]complex64, size)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex64, size)
	dit2(out, in, 0, 1)

	magnitude := make([]float32, size)
	for i, c := range out {
		re, im := real(c), imag(c)
		magnitude[i] = float32(math.Sqrt(float64(re*re + im*im)))
	}
	return magnitude
}

// dit2 writes the len(out)-point transform of in[offset], in[offset+stride], ...
// into out. len(out) must be a power of two.
func dit2(out, in []complex64, offset, stride int) {
	n := len(out)
	if n == 1 {
		out[0] = in[offset]
		return
	}

	half := n / 2
	dit2(out[:half], in, offset, 2*stride)
	dit2(out[half:], in, offset+stride, 2*stride)

	for k := range half {
		even := out[k]
		odd := twiddle(k, n) * out[k+half]
		out[k] = even + odd
		out[k+half] = even - odd
	}
}

// twiddle returns e^(-2*pi*i*k/n)
func twiddle(k, n int) complex64 {
	angle := -2 * math.Pi * float64(k) / float64(n)
	return complex(float32(math.Cos(angle)), float32(math.Sin(angle)))
}

func goDSPMagnitude(x []float32) []float32 {
	wide := make([]float64, len(x))
	for i, v := range x {
		wide[i] = float64(v)
	}
	return complexMagnitude(fft.FFTReal(wide))
}

func gonumMagnitude(x []float32) []float32 {
	seq := make([]complex128, len(x))
	for i, v := range x {
		seq[i] = complex(float64(v), 0)
	}
	return complexMagnitude(fourier.NewCmplxFFT(len(x)).Coefficients(nil, seq))
}

func complexMagnitude(bins []complex128) []float32 {
	magnitude := make([]float32, len(bins))
	for i, c := range bins {
		magnitude[i] = float32(cmplx.Abs(c))
	}
	return magnitude
}
