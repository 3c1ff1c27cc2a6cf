// Package uncertainty injects measurement uncertainty into sample records.
//
// Each measured value v with uncertainty u is replaced by a draw from
// Uniform(v-u/2, v+u/2).
package uncertainty

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws one value from a uniform distribution on [lower, upper].
type Sampler interface {
	SampleUniform(lower, upper float32) float32
}

// UniformSampler draws from gonum's uniform distribution over a seeded PCG
// source. Two samplers created with the same seed produce the same stream.
type UniformSampler struct {
	src rand.Source
}

// NewUniformSampler creates a deterministic sampler for seed
func NewUniformSampler(seed uint64) *UniformSampler {
	return &UniformSampler{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

// SampleUniform implements Sampler.
func (s *UniformSampler) SampleUniform(lower, upper float32) float32 {
	if lower == upper {
		return lower
	}
	dist := distuv.Uniform{
		Min: float64(lower),
		Max: float64(upper),
		Src: s.src,
	}
	return float32(dist.Rand())
}

// MidpointSampler always returns the centre of the interval. It makes
// pipelines reproducible without any randomness.
type MidpointSampler struct{}

// SampleUniform implements Sampler.
func (MidpointSampler) SampleUniform(lower, upper float32) float32 {
	return lower + (upper-lower)/2
}

// Perturb replaces every sample in place with a draw centred on it, with the
// given total width.
func Perturb(samples []float32, width float32, s Sampler) {
	for i, v := range samples {
		samples[i] = s.SampleUniform(v-width/2, v+width/2)
	}
}
