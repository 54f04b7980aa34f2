package sorting

import "errors"

// ErrNegativeSize is returned when a negative array size is requested.
var ErrNegativeSize = errors.New("sorting: negative size")

// Options configures SortLargeArray.
//
// Fields:
//   - Seed: RNG seed for the generated input. 0 selects defaultSeed so that
//     runs are reproducible unless the caller explicitly asks otherwise.
type Options struct {
	Seed int64
}

// DefaultOptions returns Options with the default seed policy.
func DefaultOptions() Options {
	return Options{Seed: 0}
}
