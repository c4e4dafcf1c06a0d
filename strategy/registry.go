package strategy

import (
	"fmt"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// New creates the built-in strategy for mode.
//
// Options that do not apply to the selected strategy are ignored.
func New(mode types.Mode, opts ...Option) (types.Strategy, error) {
	switch mode {
	case types.ModeSequential:
		return NewSequential(opts...)
	case types.ModeThreaded:
		return NewThreaded(opts...)
	case types.ModeProcess:
		return NewProcess(opts...)
	default:
		return nil, fmt.Errorf("%w: no strategy for mode %q", types.ErrStrategyUnavailable, mode)
	}
}
