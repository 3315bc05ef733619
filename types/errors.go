package types

import "errors"

// Sentinel errors for the autologic library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components use sentinel errors for known conditions and
// wrap external errors with context via fmt.Errorf("...: %w", err).

// Scheduler errors - public API errors returned by the Scheduler.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRosterRequired is returned when the roster is nil or empty.
	ErrRosterRequired = errors.New("roster is required")

	// ErrRoleStrategyRequired is returned when the role strategy is nil.
	ErrRoleStrategyRequired = errors.New("role strategy is required")

	// ErrConfigurationInfeasible is returned when the roster cannot
	// satisfy role minima regardless of partitioning: some role's
	// roster-wide qualified count is below minimum × heat count.
	ErrConfigurationInfeasible = errors.New("configuration is structurally infeasible")

	// ErrSchedulingExhausted is returned when the iteration budget is
	// spent without an accepted attempt. This is a legitimate "no
	// solution under current tolerances" outcome, not a bug; loosen
	// parity tolerances, raise the budget, or fix qualifications.
	ErrSchedulingExhausted = errors.New("scheduling exhausted iteration budget")

	// ErrCancelled is returned when cancellation is observed mid-loop,
	// either from the context or from an iteration hook.
	ErrCancelled = errors.New("scheduling cancelled")

	// ErrInvariantViolation indicates an accepted schedule failed
	// post-acceptance validation. Unreachable when the pipeline is
	// correct; treated as an internal assertion failure.
	ErrInvariantViolation = errors.New("schedule invariant violation")
)

// Role assignment errors - per-attempt signals consumed by the
// scheduler.
var (
	// ErrRoleUnfilled is returned when a heat attempt cannot staff a
	// required role minimum.
	ErrRoleUnfilled = errors.New("required role unfilled")

	// ErrRoleOverfilled is returned when pinned assignments exceed a
	// non-instructor role's exact minimum, which no selection order
	// can repair within the attempt.
	ErrRoleOverfilled = errors.New("required role overfilled by pinned assignments")
)

// Ingestion and export errors.
var (
	// ErrMalformedExport is returned when an ingestion file is missing
	// required columns, or when an export is requested from a roster
	// that holds no accepted schedule.
	ErrMalformedExport = errors.New("malformed export")
)
