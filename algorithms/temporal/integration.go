package temporal

import (
	"github.com/RyanBlaney/sonido-swell/algorithms/filters"
)

// MotionIntegrator turns an acceleration record into a position record by
// two cascaded trapezoidal integrations, starting from rest, followed by
// drift removal.
type MotionIntegrator struct {
	dt    float32
	drift *filters.DriftRemoval
}

// NewMotionIntegrator creates an integrator for samples spaced dt seconds apart.
// dt must be non-zero; it is validated by the caller's configuration.
func NewMotionIntegrator(dt float32) *MotionIntegrator {
	return &MotionIntegrator{
		dt:    dt,
		drift: filters.NewDriftRemoval(),
	}
}

// Timestep returns the sample spacing in seconds
func (mi *MotionIntegrator) Timestep() float32 {
	return mi.dt
}

// Integrate replaces accelerations with zero-mean positions in place.
func (mi *MotionIntegrator) Integrate(samples []float32) {
	mi.doubleIntegrate(samples)
	mi.drift.Process(samples)
}

// doubleIntegrate applies
//
//	speed[i]    = speed[i-1]    + dt*(accel[i-1]+accel[i])/2
//	position[i] = position[i-1] + dt*(speed[i-1]+speed[i])/2
//
// with accel[-1] taken as accel[0] and speed[-1] = position[-1] = 0.
func (mi *MotionIntegrator) doubleIntegrate(samples []float32) {
	if len(samples) == 0 {
		return
	}

	var speed, position float32
	prevAccel := samples[0]

	for i, accel := range samples {
		newSpeed := speed + mi.dt*(prevAccel+accel)/2
		position += mi.dt * (speed + newSpeed) / 2

		speed = newSpeed
		prevAccel = accel
		samples[i] = position
	}
}
