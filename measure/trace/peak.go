package trace

import vecmath "github.com/cwbudde/algo-vecmath"

// Peak finds the extremum of the trace relative to baseline between the
// cursors and returns its baseline-relative amplitude and sample index.
//
// Each candidate value is the binned average of window consecutive
// samples starting at the candidate index; window 1 compares raw
// samples. Up never reports a value below zero: a trace that stays
// under the baseline yields 0, and the position is only meaningful when
// a rising excursion exists. Down is symmetric. Both reports whichever
// polarity lies farther from the baseline, preferring the rising
// excursion on an exact magnitude tie. Equal candidates resolve to the
// lowest index.
func Peak(data []float64, baseline float64, begin, end, window int, dir Direction) (float64, int, error) {
	if err := checkCursors("peak", len(data), begin, end); err != nil {
		return 0, 0, err
	}

	span := end - begin + 1
	if window < 1 || window > span {
		return 0, 0, rangeErr("peak", "averaging window %d outside [1, %d]", window, span)
	}

	if dir != Up && dir != Down && dir != Both {
		return 0, 0, rangeErr("peak", "unknown direction %d", int(dir))
	}

	var (
		up      float64
		upPos   = begin
		down    float64
		downPos = begin
	)

	for i := begin; i+window-1 <= end; i++ {
		v := binnedMean(data, i, window) - baseline

		if v > up {
			up = v
			upPos = i
		}

		if v < down {
			down = v
			downPos = i
		}
	}

	switch dir {
	case Up:
		return up, upPos, nil
	case Down:
		return down, downPos, nil
	}

	// Both: the excursion farther from the baseline wins; the rising
	// one on an exact tie.
	if -down > up {
		return down, downPos, nil
	}

	return up, upPos, nil
}

// binnedMean averages window consecutive samples starting at i.
func binnedMean(data []float64, i, window int) float64 {
	if window == 1 {
		return data[i]
	}

	return vecmath.Sum(data[i:i+window]) / float64(window)
}
