package source

import "github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgMask       = 0x7FFFFFFF
)

// LCG draws points from a 32-bit linear congruential generator.
//
// The formula is fixed (Numerical Recipes constants, 31-bit output) so the
// same seed produces the same stream in any language. It is much weaker than
// PCG and is intended for cross-implementation comparisons only.
type LCG struct {
	state uint32
}

var _ types.PointSource = (*LCG)(nil)

// NewLCG creates an LCG point source.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next returns the next point.
func (s *LCG) Next() (x, y float64) {
	return s.float(), s.float()
}

func (s *LCG) float() float64 {
	s.state = s.state*lcgMultiplier + lcgIncrement
	v := s.state & lcgMask
	if v == lcgMask {
		// keep the half-open [0, 1) contract
		v--
	}

	return float64(v) / float64(lcgMask)
}

// LCGFactory seeds every worker with 12345 + workerID*67890, truncated to 32 bits.
// The task seed is ignored so streams stay comparable with other implementations
// of the same generator.
func LCGFactory(task types.Task) types.PointSource {
	return NewLCG(uint32(12345 + task.WorkerID*67890)) //nolint:gosec // intentional truncation
}
