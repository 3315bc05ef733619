// Package strategy provides role assignment strategies for a single
// heat.
//
// Greedy is the baseline: it processes roles in ascending order of
// slack (scarcest first) and takes the first available qualified
// participant for each slot, so a shared candidate is never consumed
// by a role that could afford to lose it. Backtracking wraps Greedy
// with a bounded augmenting-path search for the rare heats where the
// greedy order still strands a multi-qualified candidate.
//
// Strategies mutate participant assignments in place and report
// failure as an error consumed by the scheduler's retry loop; they
// never fail the run themselves.
package strategy
