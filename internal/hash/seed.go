package hash

import "github.com/zeebo/xxh3"

// RosterSeed derives a deterministic shuffle seed from participant
// IDs.
//
// When no explicit seed is configured, the scheduler still needs runs
// over the same roster to be reproducible; hashing the IDs in order
// gives a stable seed that changes whenever the roster does.
//
// Parameters:
//   - ids: Participant IDs in roster order
//
// Returns:
//   - int64: Seed for math/rand
func RosterSeed(ids []string) int64 {
	var h uint64
	for _, id := range ids {
		h = xxh3.HashStringSeed(id, h)
	}

	return int64(h) //nolint:gosec // G115: deliberate wraparound into a rand seed
}
