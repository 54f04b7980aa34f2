package bench

import (
	"fmt"
	"time"
)

// newResult builds a Result from a measured duration, clamping at zero.
func newResult(name string, d time.Duration, summary string) Result {
	ms := float64(d.Nanoseconds()) / float64(time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	return Result{Name: name, ElapsedMs: ms, Summary: summary}
}

// Measure runs fn once and returns its elapsed time and summary.
// When fn fails the Result still carries the elapsed time, and the error is
// returned wrapped with the measurement name.
func Measure(name string, fn func() (string, error)) (Result, error) {
	start := time.Now()
	summary, err := fn()
	elapsed := time.Since(start)

	res := newResult(name, elapsed, summary)
	if err != nil {
		return res, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}
