// Command traceinfo prints measurements for built-in synthetic traces.
//
// Usage:
//
//	traceinfo [flags] [trace-name ...]
//
// Without arguments it measures all built-in traces. The tool exists to
// eyeball the measurement kernels against waveforms whose features are
// known in closed form.
//
// Examples:
//
//	traceinfo sine
//	traceinfo -length 8192 -window 5 alpha
//	traceinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ephys/measure/trace"
)

type traceEntry struct {
	name string
	gen  func(length int, dt float64) []float64
}

var registry = []traceEntry{
	{"sine", func(length int, dt float64) []float64 {
		out := make([]float64, length)
		for i := range out {
			out[i] = math.Sin(float64(i) * dt)
		}
		return out
	}},
	{"impulse", func(length int, _ float64) []float64 {
		out := make([]float64, length)
		out[length/2] = 1
		return out
	}},
	{"alpha", func(length int, _ float64) []float64 {
		// Alpha-function synaptic event peaking at a tenth of the trace.
		out := make([]float64, length)
		onset := length / 5
		tau := float64(length) / 10
		for i := onset; i < length; i++ {
			t := float64(i-onset) / tau
			out[i] = t * math.Exp(1-t)
		}
		return out
	}},
	{"ramp", func(length int, _ float64) []float64 {
		out := make([]float64, length)
		for i := range out {
			out[i] = float64(i) / float64(length-1)
		}
		return out
	}},
}

func main() {
	length := flag.Int("length", 4096, "trace length in samples")
	dt := flag.Float64("dt", 1.0/500, "sampling interval for the sine trace")
	window := flag.Int("window", 1, "slope window length in samples")
	frac := flag.Float64("frac", 0.2, "lower rise-time fraction")
	list := flag.Bool("list", false, "list available trace names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: traceinfo [flags] [trace-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints measurements for built-in synthetic traces.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  traceinfo sine\n")
		fmt.Fprintf(os.Stderr, "  traceinfo -length 8192 -window 5 alpha\n")
		fmt.Fprintf(os.Stderr, "  traceinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Println(e.name)
		}
		return
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching traces\n")
		os.Exit(1)
	}

	printMeasurements(entries, *length, *dt, *window, *frac)
}

func resolveEntries(names []string) []traceEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]traceEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []traceEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown trace %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printMeasurements(entries []traceEntry, length int, dt float64, window int, frac float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Trace\tBase\tPeak\tPeak Pos\tRise [pts]\tMax Rise\tRise Pos\tMax Decay\tDecay Pos\n")
	fmt.Fprintf(tw, "-----\t----\t----\t--------\t----------\t--------\t--------\t---------\t---------\n")

	for _, e := range entries {
		data := e.gen(length, dt)
		end := length - 1

		// Baseline over the leading tenth of the trace.
		mean, _, err := trace.Base(data, 0, length/10)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}

		amp, pos, err := trace.Peak(data, mean, 0, end, 1, trace.Both)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}

		riseStr := "-"
		if r, err := trace.RiseTime(data, mean, amp, 0, pos, frac); err == nil && pos > 0 {
			riseStr = fmt.Sprintf("%d", r.Samples())
		}

		rise, err := trace.MaxRise(data, 0, end, window)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}

		decay, err := trace.MaxDecay(data, 0, end, window)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}

		fmt.Fprintf(tw, "%s\t%.4g\t%.4g\t%d\t%s\t%.4g\t%.1f\t%.4g\t%.1f\n",
			e.name, mean, amp, pos, riseStr,
			rise.Value, rise.Position, decay.Value, decay.Position)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
