package trace

import "math"

// Half describes the half-amplitude crossings around a peak. Left and
// Right are the outermost samples whose baseline-relative magnitude
// still reaches half the peak amplitude; LeftReal and RightReal are the
// interpolated crossings in fractional sample points.
type Half struct {
	Left      int
	Right     int
	LeftReal  float64
	RightReal float64
}

// Width returns the full width at half maximum in sample points.
func (h Half) Width() float64 { return h.RightReal - h.LeftReal }

// HalfDuration locates the half-amplitude crossings on either side of
// center, walking left towards begin and right towards end. The
// amplitude is baseline-relative, as returned by Peak; magnitudes are
// compared, so negative-going events work unchanged. Returns
// ErrNoCrossing when the sample at center itself stays below half
// amplitude.
func HalfDuration(data []float64, baseline, amplitude float64, center, begin, end int) (Half, error) {
	if err := checkCursors("halfduration", len(data), begin, end); err != nil {
		return Half{}, err
	}

	if center < begin || center > end {
		return Half{}, rangeErr("halfduration", "center %d outside cursors [%d, %d]", center, begin, end)
	}

	half := math.Abs(amplitude) / 2
	if math.Abs(data[center]-baseline) < half {
		return Half{}, ErrNoCrossing
	}

	left := center
	for left > begin && math.Abs(data[left-1]-baseline) >= half {
		left--
	}

	right := center
	for right < end && math.Abs(data[right+1]-baseline) >= half {
		right++
	}

	h := Half{
		Left:      left,
		Right:     right,
		LeftReal:  float64(left),
		RightReal: float64(right),
	}

	// Interpolate each crossing from its bracketing pair; at the cursor
	// itself there is no bracket and the integer position stands.
	if left > begin {
		y0 := math.Abs(data[left-1] - baseline)
		y1 := math.Abs(data[left] - baseline)

		if y1 != y0 {
			h.LeftReal = float64(left-1) + (half-y0)/(y1-y0)
		}
	}

	if right < end {
		y0 := math.Abs(data[right] - baseline)
		y1 := math.Abs(data[right+1] - baseline)

		if y0 != y1 {
			h.RightReal = float64(right) + (y0-half)/(y0-y1)
		}
	}

	return h, nil
}
