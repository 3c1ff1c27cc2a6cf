package estimation

import "slices"

// RAO is a vessel's response amplitude operator sampled per frequency bin:
// the ratio of heave response power to wave elevation power. It is read-only
// once characterised.
type RAO struct {
	values []float32
}

// NewRAO builds an RAO from previously characterised values.
func NewRAO(values []float32) *RAO {
	return &RAO{values: slices.Clone(values)}
}

// Values returns a copy of the per-bin response.
func (r *RAO) Values() []float32 {
	return slices.Clone(r.values)
}

// At returns the response at bin i
func (r *RAO) At(i int) float32 {
	return r.values[i]
}

// Len returns the number of frequency bins.
func (r *RAO) Len() int {
	if r == nil {
		return 0
	}
	return len(r.values)
}

// Spectrum is a wave energy spectrum estimate. Bin 0 is DC, bin Len()/2 is
// the Nyquist frequency and the bins above it mirror the lower half.
type Spectrum struct {
	values   []float32
	timestep float32
}

// NewSpectrum wraps per-bin energy values sampled every timestep seconds.
func NewSpectrum(values []float32, timestep float32) *Spectrum {
	return &Spectrum{values: slices.Clone(values), timestep: timestep}
}

// Values returns a copy of the per-bin energy density.
func (s *Spectrum) Values() []float32 {
	return slices.Clone(s.values)
}

// At returns the energy density at bin i
func (s *Spectrum) At(i int) float32 {
	return s.values[i]
}

// Len returns the number of frequency bins.
func (s *Spectrum) Len() int {
	return len(s.values)
}

// Timestep returns the sampling interval of the acceleration record.
func (s *Spectrum) Timestep() float32 {
	return s.timestep
}

// Nyquist returns the index of the Nyquist bin.
func (s *Spectrum) Nyquist() int {
	return len(s.values) / 2
}

// Frequency converts bin i to Hz: i / (timestep * Len()).
func (s *Spectrum) Frequency(i int) float64 {
	return float64(i) / (float64(s.timestep) * float64(len(s.values)))
}
