// Package seed derives independent per-worker seeds and run identifiers.
package seed

import (
	"encoding/binary"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/zeebo/xxh3"
)

// domain separates worker seeds from other uses of the same base seed.
const domain = "montepi/worker"

// Random returns a fresh non-zero base seed.
func Random() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// ForWorker derives the seed of one worker from the invocation's base seed.
//
// The derivation folds the worker index into an XXH3 hash seeded with the
// base, so neighbouring workers get unrelated seeds and the same (base,
// worker) pair always yields the same seed, in every process.
//
// Parameters:
//   - base: Invocation base seed
//   - workerID: Worker index
//
// Returns:
//   - uint64: Worker seed
func ForWorker(base uint64, workerID int) uint64 {
	h := xxh3.HashStringSeed(domain, base)

	var ib [8]byte
	binary.LittleEndian.PutUint64(ib[:], uint64(workerID)) //nolint:gosec // worker IDs are non-negative
	return xxh3.HashSeed(ib[:], h)
}

// Deriver returns a closure suitable for types.Partition.Tasks.
func Deriver(base uint64) func(workerID int) uint64 {
	return func(workerID int) uint64 {
		return ForWorker(base, workerID)
	}
}

// RunID builds a short identifier for an invocation.
//
// The identifier only uses characters that are valid in NATS KV keys.
func RunID(startedAt time.Time, base uint64, sequence uint64) string {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], base)
	binary.LittleEndian.PutUint64(b[8:], sequence)
	h := xxh3.HashSeed(b[:], uint64(startedAt.UnixNano())) //nolint:gosec // wall clock is positive

	return startedAt.UTC().Format("20060102T150405") + "-" + strconv.FormatUint(h, 36)
}
