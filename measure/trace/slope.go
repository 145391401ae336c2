package trace

import "math"

// Slope describes a windowed finite-difference slope extremum.
//
// Position is the midpoint of the winning window in fractional sample
// points (a half-integer for odd window lengths), Amplitude the
// linearly interpolated sample value at that midpoint.
type Slope struct {
	Value     float64 // slope in amplitude units per sample point
	Position  float64
	Amplitude float64
}

// MaxRise returns the steepest rising slope between the cursors.
//
// The slope at position i is the forward difference across window
// samples, (data[i+window] - data[i]) / window, evaluated for every i
// in [begin, end-window]. Equal slopes resolve to the lowest index, so
// an all-flat trace reports the first admissible window.
func MaxRise(data []float64, begin, end, window int) (Slope, error) {
	if err := checkCursors("maxrise", len(data), begin, end); err != nil {
		return Slope{}, err
	}

	if err := checkSlopeWindow("maxrise", len(data), begin, end, window); err != nil {
		return Slope{}, err
	}

	best := math.Inf(-1)
	bestPos := begin

	for i := begin; i+window <= end; i++ {
		if d := data[i+window] - data[i]; d > best {
			best = d
			bestPos = i
		}
	}

	return slopeAt(data, bestPos, window, best), nil
}

// MaxDecay returns the steepest falling slope between the cursors,
// reported as a positive magnitude. The scan mirrors MaxRise: the most
// negative forward difference wins, lowest index first on ties. A
// trace with no falling segment has no decay to report; the negated
// least-positive difference comes back as a negative Value.
func MaxDecay(data []float64, begin, end, window int) (Slope, error) {
	if err := checkCursors("maxdecay", len(data), begin, end); err != nil {
		return Slope{}, err
	}

	if err := checkSlopeWindow("maxdecay", len(data), begin, end, window); err != nil {
		return Slope{}, err
	}

	best := math.Inf(1)
	bestPos := begin

	for i := begin; i+window <= end; i++ {
		if d := data[i+window] - data[i]; d < best {
			best = d
			bestPos = i
		}
	}

	return slopeAt(data, bestPos, window, -best), nil
}

// slopeAt builds the result for the window starting at i, with diff the
// winning forward difference (sign-adjusted by the caller).
func slopeAt(data []float64, i, window int, diff float64) Slope {
	return Slope{
		Value:     diff / float64(window),
		Position:  float64(i) + float64(window)/2,
		Amplitude: (data[i] + data[i+window]) / 2,
	}
}
