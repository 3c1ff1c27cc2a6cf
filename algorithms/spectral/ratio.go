package spectral

import "math"

// Ratio divides two equal-length spectra bin by bin.
//
// A zero denominator yields +Inf for that bin: the response is unbounded at
// that frequency. Callers must pass spectra of equal length.
func Ratio(numerator, denominator []float32) []float32 {
	inf := float32(math.Inf(1))

	result := make([]float32, len(numerator))
	for i := range result {
		if denominator[i] == 0 {
			result[i] = inf
			continue
		}
		result[i] = numerator[i] / denominator[i]
	}
	return result
}
