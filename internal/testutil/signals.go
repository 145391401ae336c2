// Package testutil provides deterministic trace generators and
// tolerance helpers shared by measurement tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine samples sin(i*dt) for i in [0, length). It is the closed-form
// reference trace: extrema, derivative, and relative-amplitude
// crossings are all known analytically.
func Sine(dt float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = math.Sin(float64(i) * dt)
	}

	return out
}

// Impulse generates a trace with a single unit sample at pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// DC generates a constant-valued trace.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// AlphaPSC generates an alpha-function postsynaptic event starting at
// onset: amp * (t/tau) * exp(1 - t/tau), t in samples past onset. The
// peak sits at onset+tau with amplitude amp.
func AlphaPSC(length, onset int, tau, amp float64) []float64 {
	out := make([]float64, length)

	for i := onset; i < length; i++ {
		t := float64(i-onset) / tau
		out[i] = amp * t * math.Exp(1-t)
	}

	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}
