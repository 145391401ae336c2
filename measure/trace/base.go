package trace

import "gonum.org/v1/gonum/stat"

// Base returns the mean and sample variance of the inclusive cursor
// range [begin, end]. A single-sample range is rejected: one point is
// not a baseline estimate.
func Base(data []float64, begin, end int) (mean, variance float64, err error) {
	if err := checkCursors("base", len(data), begin, end); err != nil {
		return 0, 0, err
	}

	mean, variance = stat.MeanVariance(data[begin:end+1], nil)

	return mean, variance, nil
}
