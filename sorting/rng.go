// Package sorting - RNG helpers for input generation.
//
// Determinism: same seed ⇒ identical arrays across platforms. No time-based
// sources are used here; callers that want fresh data pass a fresh seed.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe. Every call to
// SortLargeArray builds its own stream.
package sorting

import "math/rand"

// defaultSeed is used when callers pass Seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// RandomInt32s returns size values drawn uniformly from the full int32 range.
// If rng==nil, the default deterministic stream is used.
//
// Complexity: O(size) time and space.
func RandomInt32s(size int, rng *rand.Rand) ([]int32, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	out := make([]int32, size)
	for i := range out {
		out[i] = int32(r.Uint32()) // reinterpret: covers negatives too
	}
	return out, nil
}
