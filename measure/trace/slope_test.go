package trace

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ephys/internal/testutil"
)

func TestMaxRiseImpulse(t *testing.T) {
	data := testutil.Impulse(32768, 16385)

	s, err := MaxRise(data, 1, len(data)-1, 1)
	if err != nil {
		t.Fatal(err)
	}

	// The rising edge spans samples 16384 and 16385.
	if s.Value != 1.0 {
		t.Errorf("slope = %v, want 1", s.Value)
	}

	if s.Position != 16384.5 {
		t.Errorf("position = %v, want 16384.5", s.Position)
	}

	if s.Amplitude != 0.5 {
		t.Errorf("amplitude = %v, want 0.5", s.Amplitude)
	}
}

func TestMaxDecayImpulse(t *testing.T) {
	data := testutil.Impulse(32768, 16385)

	s, err := MaxDecay(data, 0, len(data)-1, 1)
	if err != nil {
		t.Fatal(err)
	}

	// The falling edge spans samples 16385 and 16386.
	if s.Value != 1.0 {
		t.Errorf("slope magnitude = %v, want 1", s.Value)
	}

	if s.Position != 16385.5 {
		t.Errorf("position = %v, want 16385.5", s.Position)
	}

	if s.Amplitude != 0.5 {
		t.Errorf("amplitude = %v, want 0.5", s.Amplitude)
	}
}

func TestMaxRiseOutOfRange(t *testing.T) {
	data := make([]float64, 32768)

	_, err := MaxRise(data, 0, len(data), 1)
	requireRangeError(t, err)

	_, err = MaxRise(data, -1, len(data)-1, 1)
	requireRangeError(t, err)
}

func TestMaxDecayOutOfRange(t *testing.T) {
	data := make([]float64, 32768)

	_, err := MaxDecay(data, 0, len(data), 1)
	requireRangeError(t, err)

	_, err = MaxDecay(data, -1, len(data)-1, 1)
	requireRangeError(t, err)
}

func TestMaxRiseWindowBounds(t *testing.T) {
	data := make([]float64, 32768)
	window := 10

	// End cursor not beyond the window length past begin.
	_, err := MaxRise(data, 0, window-1, window)
	requireRangeError(t, err)

	_, err = MaxRise(data, 0, window, window)
	requireRangeError(t, err)

	// Begin cursor too close to the end of the trace.
	_, err = MaxRise(data, len(data)-window, len(data)-1, window)
	requireRangeError(t, err)

	// Window swallowing the whole trace.
	_, err = MaxRise(data, 0, len(data)-1, len(data)+1)
	requireRangeError(t, err)

	_, err = MaxRise(data, 0, len(data)-1, len(data))
	requireRangeError(t, err)
}

func TestMaxDecayWindowBounds(t *testing.T) {
	data := make([]float64, 32768)
	window := 10

	_, err := MaxDecay(data, 0, window-1, window)
	requireRangeError(t, err)

	_, err = MaxDecay(data, len(data)-window, len(data)-1, window)
	requireRangeError(t, err)

	_, err = MaxDecay(data, 0, len(data)-1, len(data)+1)
	requireRangeError(t, err)
}

func TestMaxRiseSine(t *testing.T) {
	// Peak-to-peak span: the steepest rise is the zero crossing at 2*pi.
	wave := testutil.Sine(dt, int(3*math.Pi/dt))

	s, err := MaxRise(wave, int((math.Pi/2)/dt), int((5*math.Pi/2)/dt)-1, 1)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNearRel(t, "position", s.Position, 2*math.Pi/dt, tol)
	testutil.RequireNear(t, "amplitude", s.Amplitude, 0, 0.1)

	// d/di sin(i*dt) peaks at dt per sample.
	testutil.RequireNearRel(t, "slope", s.Value, dt, tol)
}

func TestMaxDecaySine(t *testing.T) {
	// The steepest decay of one period sits at the crossing at pi.
	wave := testutil.Sine(dt, int(2*math.Pi/dt))

	s, err := MaxDecay(wave, 1, int((3*math.Pi/2)/dt), 1)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNearRel(t, "position", s.Position, math.Pi/dt, tol)
	testutil.RequireNear(t, "amplitude", s.Amplitude, 0, 0.1)
	testutil.RequireNearRel(t, "slope magnitude", s.Value, dt, tol)
}

func TestSlopesZeroTrace(t *testing.T) {
	data := make([]float64, 128)

	rise, err := MaxRise(data, 0, 99, 3)
	if err != nil {
		t.Fatal(err)
	}

	if rise.Value != 0 || rise.Amplitude != 0 {
		t.Errorf("rise = %+v, want zero value and amplitude", rise)
	}

	// All candidates tie; the first window wins.
	if rise.Position != 1.5 {
		t.Errorf("rise position = %v, want 1.5", rise.Position)
	}

	decay, err := MaxDecay(data, 0, 99, 3)
	if err != nil {
		t.Fatal(err)
	}

	if decay.Value != 0 || decay.Position != 1.5 {
		t.Errorf("decay = %+v, want zero value at position 1.5", decay)
	}
}

func TestMaxRiseWiderWindow(t *testing.T) {
	// Linear ramp: every window reports the exact ramp slope, and the
	// first admissible window wins.
	data := make([]float64, 64)
	for i := range data {
		data[i] = 0.25 * float64(i)
	}

	s, err := MaxRise(data, 4, 40, 8)
	if err != nil {
		t.Fatal(err)
	}

	if s.Value != 0.25 {
		t.Errorf("slope = %v, want 0.25", s.Value)
	}

	if s.Position != 8 {
		t.Errorf("position = %v, want 8", s.Position)
	}

	// Midpoint amplitude of a linear ramp is exact.
	if s.Amplitude != 2 {
		t.Errorf("amplitude = %v, want 2", s.Amplitude)
	}
}

func TestMaxDecayNoFallingSegment(t *testing.T) {
	// Monotone ramp: every forward difference is +0.25, so the value
	// goes negative to signal the absence of any decay.
	data := make([]float64, 64)
	for i := range data {
		data[i] = 0.25 * float64(i)
	}

	s, err := MaxDecay(data, 0, 63, 1)
	if err != nil {
		t.Fatal(err)
	}

	if s.Value != -0.25 {
		t.Errorf("slope = %v, want -0.25", s.Value)
	}

	// All candidates tie; the first window wins.
	if s.Position != 0.5 {
		t.Errorf("position = %v, want 0.5", s.Position)
	}

	if s.Amplitude != 0.125 {
		t.Errorf("amplitude = %v, want 0.125", s.Amplitude)
	}
}

func TestSlopesIdempotent(t *testing.T) {
	data := testutil.Noise(3, 1.0, 2048)

	a, err := MaxRise(data, 0, 2047, 5)
	if err != nil {
		t.Fatal(err)
	}

	b, err := MaxRise(data, 0, 2047, 5)
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Errorf("repeated MaxRise differs: %+v vs %+v", a, b)
	}

	c, err := MaxDecay(data, 0, 2047, 5)
	if err != nil {
		t.Fatal(err)
	}

	d, err := MaxDecay(data, 0, 2047, 5)
	if err != nil {
		t.Fatal(err)
	}

	if c != d {
		t.Errorf("repeated MaxDecay differs: %+v vs %+v", c, d)
	}
}
