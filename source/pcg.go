package source

import (
	"math/rand/v2"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// pcgStream is the PCG increment shared by every worker; workers differ by seed.
const pcgStream = 0xda3e39cb94b95bdb

// PCG draws uniform points from a seeded PCG generator.
//
// Each worker owns its PCG, so no generator state is shared between workers.
type PCG struct {
	rng *rand.Rand
}

var _ types.PointSource = (*PCG)(nil)

// NewPCG creates a PCG point source.
//
// Parameters:
//   - seed: Worker seed (see internal/seed.ForWorker)
//
// Returns:
//   - *PCG: Point source producing coordinates in [0, 1)
func NewPCG(seed uint64) *PCG {
	return &PCG{rng: rand.New(rand.NewPCG(seed, pcgStream))} //nolint:gosec // statistical sampling, not security
}

// Next returns the next point.
func (s *PCG) Next() (x, y float64) {
	return s.rng.Float64(), s.rng.Float64()
}

// PCGFactory builds a PCG source from each task's seed.
func PCGFactory(task types.Task) types.PointSource {
	return NewPCG(task.Seed)
}
