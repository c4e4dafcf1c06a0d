package strategy

import (
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/logger"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/source"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// Option configures a strategy.
type Option func(*strategyOptions)

type strategyOptions struct {
	factory    types.SourceFactory
	sourceName string
	logger     types.Logger
	binary     string
	args       []string
	env        []string
}

func applyOptions(opts []Option) (*strategyOptions, error) {
	o := &strategyOptions{}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = logger.OrNop(o.logger)

	if o.factory == nil {
		f, err := source.ByName(o.sourceName)
		if err != nil {
			return nil, err
		}
		o.factory = f
	}

	return o, nil
}

// WithSourceFactory sets the factory that builds each worker's point source.
//
// Only in-process strategies honor it. The process strategy rebuilds sources
// in the child from the task seed, see WithSourceName.
func WithSourceFactory(f types.SourceFactory) Option {
	return func(o *strategyOptions) {
		o.factory = f
	}
}

// WithSourceName selects a registered seeded source by name (see source.ByName).
//
// Default: "pcg"
func WithSourceName(name string) Option {
	return func(o *strategyOptions) {
		o.sourceName = name
	}
}

// WithLogger sets the logger used for worker lifecycle messages.
func WithLogger(l types.Logger) Option {
	return func(o *strategyOptions) {
		o.logger = l
	}
}

// WithBinary sets the executable started for each worker process.
//
// Default: os.Executable()
func WithBinary(path string) Option {
	return func(o *strategyOptions) {
		o.binary = path
	}
}

// WithArgs sets extra command-line arguments passed to worker processes.
func WithArgs(args ...string) Option {
	return func(o *strategyOptions) {
		o.args = append([]string(nil), args...)
	}
}

// WithEnv adds KEY=VALUE pairs to the environment of worker processes.
func WithEnv(env ...string) Option {
	return func(o *strategyOptions) {
		o.env = append(o.env, env...)
	}
}
