package trace

import (
	"errors"
	"fmt"
)

// ErrNoCrossing is returned by Threshold and HalfDuration when the
// searched region never crosses the requested level.
var ErrNoCrossing = errors.New("trace: no crossing in range")

// RangeError reports a cursor or window precondition violation. It is
// the only error kind produced by cursor validation; the message names
// the bound that was violated.
type RangeError struct {
	Op  string // kernel that rejected the call
	Msg string
}

func (e *RangeError) Error() string {
	return "trace: " + e.Op + ": " + e.Msg
}

func rangeErr(op, format string, args ...any) error {
	return &RangeError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Direction selects the excursion polarity for extremum searches.
type Direction int

const (
	// Up searches rising excursions only.
	Up Direction = iota
	// Down searches falling excursions only.
	Down
	// Both reports the larger-magnitude excursion of either polarity.
	Both
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// checkCursors validates an inclusive cursor pair against the trace
// length. All kernels need at least two samples in range, so begin must
// lie strictly before end.
func checkCursors(op string, n, begin, end int) error {
	if begin < 0 {
		return rangeErr(op, "begin cursor %d before first sample", begin)
	}

	if end >= n {
		return rangeErr(op, "end cursor %d at or beyond trace length %d", end, n)
	}

	if begin >= end {
		return rangeErr(op, "begin cursor %d not before end cursor %d", begin, end)
	}

	return nil
}

// checkSlopeWindow validates a forward-difference window against the
// cursor span and the trace length. The span must exceed the window so
// that at least one full window fits, and the window must be shorter
// than the whole trace.
func checkSlopeWindow(op string, n, begin, end, window int) error {
	if window < 1 {
		return rangeErr(op, "window length %d not positive", window)
	}

	if window >= n {
		return rangeErr(op, "window length %d not below trace length %d", window, n)
	}

	if end-begin <= window {
		return rangeErr(op, "window length %d not below cursor span %d", window, end-begin)
	}

	return nil
}
