// Package sorting generates large arrays of random int32 values and sorts
// them with an unstable, in-place pattern-defeating quicksort.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/sorting"
//
//	out, err := sorting.SortLargeArray(1_000_000, sorting.Options{Seed: 42})
//	if err != nil {
//	  // handle ErrNegativeSize
//	}
//
// Guarantees:
//   - The result is non-decreasing.
//   - The result is a permutation of the generated input.
//   - The same non-zero seed produces the same input (and thus output) on
//     every platform; Seed == 0 selects a fixed default stream.
//
// Performance:
//
//   - Generation: O(n)
//   - Sort:       O(n log n) expected, in place, not stable
package sorting
