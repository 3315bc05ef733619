package types

import "context"

// Progress is the payload delivered to iteration hooks.
type Progress struct {
	// RunID identifies the scheduling run.
	RunID string

	// Iteration is the zero-based index of the current attempt.
	Iteration int

	// MaxIterations is the configured iteration budget.
	MaxIterations int
}

// Hooks defines callbacks for scheduler lifecycle events.
//
// All hooks are optional and run synchronously inside the retry loop,
// so they must be cheap; a slow hook stretches every iteration.
//
// Cancellation: a non-nil error returned from OnIteration is treated
// as a cooperative cancellation request. The loop finishes the check
// and returns a Cancelled outcome; it never panics or unwinds through
// the hook.
//
// Example:
//
//	hooks := &types.Hooks{
//	    OnIteration: func(ctx context.Context, p types.Progress) error {
//	        if p.Iteration%1000 == 0 {
//	            log.Printf("attempt %d/%d", p.Iteration, p.MaxIterations)
//	        }
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnIteration is called once at the start of every partitioner
	// attempt. Returning a non-nil error cancels the run.
	OnIteration func(ctx context.Context, progress Progress) error

	// OnHeatRejected is called when an attempt is rejected, with the
	// offending heat number and a short reason.
	OnHeatRejected func(ctx context.Context, iteration, heat int, reason string) error

	// OnFinished is called exactly once at the terminal outcome.
	OnFinished func(ctx context.Context, outcome Outcome, progress Progress) error
}
