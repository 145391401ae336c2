package trace

import "math"

// Rise holds the threshold crossings of a rising phase.
//
// TLow is the first sample in range whose baseline-relative magnitude
// reaches the lower threshold, THigh the first subsequent sample
// reaching the upper threshold. TLowReal is the linearly interpolated
// lower crossing in fractional sample points.
type Rise struct {
	TLow     int
	THigh    int
	TLowReal float64
}

// Samples returns the raw rise time in sample points.
func (r Rise) Samples() int { return r.THigh - r.TLow }

// RiseTime locates the relative-amplitude threshold crossings of the
// rising phase between the cursors. The lower threshold sits at
// frac*amplitude above the baseline, the upper at (1-frac)*amplitude,
// so frac = 0.2 yields the conventional 20-80% rise time. Thresholds
// compare baseline-relative magnitudes, so negative-going events work
// the same way as positive ones.
//
// The range must span the full rising phase: a crossing that falls
// beyond end clamps to end.
func RiseTime(data []float64, baseline, amplitude float64, begin, end int, frac float64) (Rise, error) {
	if err := checkCursors("risetime", len(data), begin, end); err != nil {
		return Rise{}, err
	}

	if frac <= 0 || frac >= 0.5 {
		return Rise{}, rangeErr("risetime", "lower fraction %g outside (0, 0.5)", frac)
	}

	lower := math.Abs(frac * amplitude)
	upper := math.Abs((1 - frac) * amplitude)

	tLow := end
	for i := begin; i <= end; i++ {
		if math.Abs(data[i]-baseline) >= lower {
			tLow = i
			break
		}
	}

	tHigh := end
	for i := tLow; i <= end; i++ {
		if math.Abs(data[i]-baseline) >= upper {
			tHigh = i
			break
		}
	}

	r := Rise{TLow: tLow, THigh: tHigh, TLowReal: float64(tLow)}

	// Interpolate the lower crossing from the bracketing pair. A
	// clamped crossing never reached the threshold and keeps its
	// integer position.
	if tLow > begin && math.Abs(data[tLow]-baseline) >= lower {
		y0 := math.Abs(data[tLow-1] - baseline)
		y1 := math.Abs(data[tLow] - baseline)

		if y1 != y0 {
			r.TLowReal = float64(tLow-1) + (lower-y0)/(y1-y0)
		}
	}

	return r, nil
}
