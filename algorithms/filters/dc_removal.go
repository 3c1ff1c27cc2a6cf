package filters

import (
	"github.com/RyanBlaney/sonido-swell/algorithms/common"
)

// DriftRemoval removes the DC offset from a whole record by subtracting its
// arithmetic mean. It needs the complete record, so it only works on batch data.
type DriftRemoval struct{}

// NewDriftRemoval creates a new drift removal stage
func NewDriftRemoval() *DriftRemoval {
	return &DriftRemoval{}
}

// Process subtracts the mean of samples from every sample in place and
// returns the removed offset. Empty input is left untouched.
func (dr *DriftRemoval) Process(samples []float32) float32 {
	if len(samples) == 0 {
		return 0
	}

	mean := common.Mean(samples)
	for i := range samples {
		samples[i] -= mean
	}
	return mean
}
