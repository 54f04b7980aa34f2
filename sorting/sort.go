// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// SortLargeArray generates size random int32 values and returns them sorted
// in non-decreasing order.
//
// Implementation:
//   - Stage 1: validate size ≥ 0.
//   - Stage 2: fill a fresh slice from the seeded stream (see Options).
//   - Stage 3: sort in place with slices.Sort (pdqsort, unstable).
//
// size == 0 yields an empty, non-nil slice.
//
// Complexity: O(n log n) time, O(n) space for the result.
func SortLargeArray(size int, opts Options) ([]int32, error) {
	data, err := RandomInt32s(size, rngFromSeed(opts.Seed))
	if err != nil {
		return nil, fmt.Errorf("SortLargeArray(%d): %w", size, err)
	}
	Sort(data)

	return data, nil
}

// Sort orders a in place, non-decreasing. Equal elements may be reordered.
func Sort(a []int32) {
	slices.Sort(a)
}

// IsSorted reports whether a is in non-decreasing order.
func IsSorted(a []int32) bool {
	return slices.IsSorted(a)
}

// IsPermutation reports whether a and b hold the same multiset of values.
//
// Complexity: O(n) expected time, O(distinct) space.
func IsPermutation(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int32]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
