package autologic

import (
	"math/rand"

	"github.com/joshuavictorchen/autologic-sub000/types"
)

// Option configures a Scheduler with optional dependencies.
type Option func(*schedulerOptions)

// schedulerOptions holds optional Scheduler configuration.
type schedulerOptions struct {
	strategy types.RoleStrategy
	hooks    *types.Hooks
	metrics  types.MetricsCollector
	logger   types.Logger
	rng      *rand.Rand
}

// WithStrategy sets a custom role assignment strategy.
//
// The default is strategy.NewGreedy(); strategy.NewBacktracking()
// trades a bounded search for completeness on heats where greedy
// ordering strands a multi-qualified candidate.
//
// Parameters:
//   - st: RoleStrategy implementation
//
// Returns:
//   - Option: Functional option for New
func WithStrategy(st types.RoleStrategy) Option {
	return func(o *schedulerOptions) {
		o.strategy = st
	}
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	hooks := &autologic.Hooks{
//	    OnIteration: func(ctx context.Context, p autologic.Progress) error {
//	        return reportProgress(p)
//	    },
//	}
//	sched, err := autologic.New(&cfg, roster, autologic.WithHooks(hooks))
func WithHooks(hooks *types.Hooks) Option {
	return func(o *schedulerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *schedulerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
func WithLogger(logger types.Logger) Option {
	return func(o *schedulerOptions) {
		o.logger = logger
	}
}

// WithRand sets the random source driving the category shuffle,
// overriding Config.Seed.
//
// The scheduler threads this single generator through every shuffle;
// no ambient global randomness is used, so a fixed source reproduces a
// run exactly.
//
// Parameters:
//   - rng: Seeded random generator
//
// Returns:
//   - Option: Functional option for New
func WithRand(rng *rand.Rand) Option {
	return func(o *schedulerOptions) {
		o.rng = rng
	}
}
