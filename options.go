package montecarlo

// Option configures an Estimator with optional dependencies.
type Option func(*estimatorOptions)

type estimatorOptions struct {
	hooks         *Hooks
	metrics       MetricsCollector
	logger        Logger
	journal       Journal
	sourceFactory SourceFactory
	strategies    []Strategy
}

// WithHooks sets estimator event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions, unset callbacks are no-ops
//
// Returns:
//   - Option: Functional option for NewEstimator
//
// Example:
//
//	hooks := &montecarlo.Hooks{
//	    OnRunComplete: func(ctx context.Context, r montecarlo.Result) error {
//	        fmt.Printf("pi ~ %.6f\n", r.Estimate)
//	        return nil
//	    },
//	}
//	est, err := montecarlo.NewEstimator(&cfg, montecarlo.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *estimatorOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "")
//	est, err := montecarlo.NewEstimator(&cfg, montecarlo.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *estimatorOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
func WithLogger(logger Logger) Option {
	return func(o *estimatorOptions) {
		o.logger = logger
	}
}

// WithJournal records one entry per invocation in j.
//
// Journal failures are logged and counted but never fail an invocation.
func WithJournal(j Journal) Option {
	return func(o *estimatorOptions) {
		o.journal = j
	}
}

// WithSourceFactory overrides the point source of the in-process strategies
// (sequential and threaded). Worker processes always use Config.Source, so
// Run rejects ModeProcess with ErrInvalidArgument unless WithStrategy also
// replaces the process strategy.
//
// Example:
//
//	// replay a recorded stream
//	factory, _ := source.StaticFactory(points, partition, nil)
//	est, err := montecarlo.NewEstimator(&cfg, montecarlo.WithSourceFactory(factory))
func WithSourceFactory(factory SourceFactory) Option {
	return func(o *estimatorOptions) {
		o.sourceFactory = factory
	}
}

// WithStrategy replaces the built-in strategy for s.Mode().
func WithStrategy(s Strategy) Option {
	return func(o *estimatorOptions) {
		o.strategies = append(o.strategies, s)
	}
}
