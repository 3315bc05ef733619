package types

// Outcome is the terminal result of a scheduling run.
type Outcome int

// Run outcomes.
const (
	// OutcomeAccepted means an attempt satisfied every balance and
	// role constraint and the schedule was kept.
	OutcomeAccepted Outcome = iota

	// OutcomeExhausted means the iteration budget was spent without an
	// accepted attempt.
	OutcomeExhausted

	// OutcomeCancelled means cancellation was observed before an
	// attempt was accepted.
	OutcomeCancelled

	// OutcomeInfeasible means the precondition check proved no
	// partition can satisfy the role minima, so the retry loop never
	// ran.
	OutcomeInfeasible
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}
