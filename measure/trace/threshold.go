package trace

// Crossing describes where the windowed slope of a trace first reaches
// a limit. Real is the linearly interpolated crossing position between
// the last window below the limit and the first at or above it.
type Crossing struct {
	Amplitude float64 // sample value at Index
	Index     int
	Real      float64
}

// Threshold scans forward from begin for the first position whose
// windowed forward-difference slope reaches slope. This is the usual
// action potential onset criterion: the event starts where dV/dt first
// exceeds a fixed limit. Returns ErrNoCrossing when no window in
// [begin, end-window] is steep enough.
func Threshold(data []float64, begin, end, window int, slope float64) (Crossing, error) {
	if err := checkCursors("threshold", len(data), begin, end); err != nil {
		return Crossing{}, err
	}

	if err := checkSlopeWindow("threshold", len(data), begin, end, window); err != nil {
		return Crossing{}, err
	}

	prev := 0.0
	havePrev := false

	for i := begin; i+window <= end; i++ {
		s := (data[i+window] - data[i]) / float64(window)

		if s >= slope {
			c := Crossing{Amplitude: data[i], Index: i, Real: float64(i)}

			if havePrev && s != prev {
				c.Real = float64(i-1) + (slope-prev)/(s-prev)
			}

			return c, nil
		}

		prev = s
		havePrev = true
	}

	return Crossing{}, ErrNoCrossing
}
