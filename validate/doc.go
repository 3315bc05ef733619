// Package validate recomputes schedule invariants from final roster
// state.
//
// The scheduler uses it as the post-acceptance assertion; embedders
// use the same structured report for display and export, so the
// acceptance test and the human-facing summary can never disagree.
package validate
