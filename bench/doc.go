// Package bench times the numkit routines and reports the outcome as
// benchmark results: an elapsed time in floating-point milliseconds paired
// with a human-readable summary.
//
// Building blocks:
//
//	Measure       : run any func() (string, error) and time it.
//	Power/Fibonacci/Sort/Matrix: timed variants of the numeric routines.
//	Suite         : run a list of configured cases into a Run.
//	Recorder      : Prometheus histograms/counters for every measurement,
//	                 exported to a text file (no HTTP listener).
//	WriteYAML/WriteText: render a Run.
//
// Timing uses the monotonic clock carried by time.Now, so elapsed values are
// never negative even if the wall clock jumps.
package bench
