// Package trace provides scalar measurements over a single sampled
// electrophysiology trace: baseline level, peak amplitude, relative
// rise time, half duration, slope-threshold detection, and maximal
// slopes of rise and decay.
//
// A trace is a uniformly sampled []float64. All positions are expressed
// in sample points; converting between sample points and physical time
// via the sampling interval is the caller's concern. Cursors (begin,
// end) are inclusive indices selecting the region a kernel may read.
// Every kernel validates its cursors before touching a sample and
// reports violations as [*RangeError]; a failed call returns
// zero-valued results.
//
// # Usage
//
// Measure a postsynaptic event relative to a pre-event baseline:
//
//	mean, _, err := trace.Base(data, 0, 99)
//	amp, pos, err := trace.Peak(data, mean, 100, 899, 1, trace.Up)
//	rise, err := trace.RiseTime(data, mean, amp, 100, pos, 0.2)
//
// Interpolated positions (threshold crossings, slope midpoints) are
// fractional sample indices, since they generally fall between samples.
//
// Kernels are pure: they never mutate the trace and hold no state
// between calls, so distinct calls may safely run concurrently on the
// same data as long as nothing writes the underlying buffer.
package trace
