package autologic

import "github.com/joshuavictorchen/autologic-sub000/types"

// Sentinel errors returned by the Scheduler. These alias the types
// subpackage definitions so callers can match with errors.Is without
// importing types directly.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrRosterRequired is returned when the roster is nil or empty.
	ErrRosterRequired = types.ErrRosterRequired

	// ErrRoleStrategyRequired is returned when the role strategy is nil.
	ErrRoleStrategyRequired = types.ErrRoleStrategyRequired

	// ErrConfigurationInfeasible is returned when no partition can
	// satisfy the role minima, detected before the retry loop.
	ErrConfigurationInfeasible = types.ErrConfigurationInfeasible

	// ErrSchedulingExhausted is returned when the iteration budget is
	// spent without an accepted attempt.
	ErrSchedulingExhausted = types.ErrSchedulingExhausted

	// ErrCancelled is returned when cancellation is observed mid-loop.
	ErrCancelled = types.ErrCancelled

	// ErrInvariantViolation indicates an accepted schedule failed
	// post-acceptance validation; an internal assertion failure.
	ErrInvariantViolation = types.ErrInvariantViolation
)
