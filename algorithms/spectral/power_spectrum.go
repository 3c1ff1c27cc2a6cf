package spectral

// PowerSpectrum computes unnormalised periodograms: the squared magnitude of
// the zero-padded DFT, with no window applied.
type PowerSpectrum struct {
	fft *FFT
}

// NewPowerSpectrum creates a power spectrum calculator backed by a radix-2 FFT
func NewPowerSpectrum() *PowerSpectrum {
	return &PowerSpectrum{fft: NewFFT()}
}

// NewPowerSpectrumWithFFT creates a power spectrum calculator on a configured FFT.
func NewPowerSpectrumWithFFT(f *FFT) *PowerSpectrum {
	if f == nil {
		f = NewFFT()
	}
	return &PowerSpectrum{fft: f}
}

// Compute squares a magnitude spectrum bin by bin
func (ps *PowerSpectrum) Compute(magnitudeSpectrum []float32) []float32 {
	power := make([]float32, len(magnitudeSpectrum))
	for i, mag := range magnitudeSpectrum {
		power[i] = mag * mag
	}
	return power
}

// FromTimeSeries returns the periodogram of a time series. The result has
// NextPowerOfTwo(len(series)) bins.
func (ps *PowerSpectrum) FromTimeSeries(series []float32) ([]float32, error) {
	magnitude, err := ps.fft.Compute(series)
	if err != nil {
		return nil, err
	}

	// The magnitude slice is private to this call, square it in place.
	for i, mag := range magnitude {
		magnitude[i] = mag * mag
	}
	return magnitude, nil
}
