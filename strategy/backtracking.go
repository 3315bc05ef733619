package strategy

import (
	"errors"
	"fmt"

	"github.com/joshuavictorchen/autologic-sub000/types"
)

// defaultMaxSteps bounds the augmenting-path search. Heats are small
// (tens of participants), so the bound exists to keep pathological
// qualification graphs from stalling the retry loop, not because it is
// ever approached in practice.
const defaultMaxSteps = 10000

// Backtracking wraps Greedy with a bounded exact search.
//
// The greedy pass handles the common case at zero extra cost; only
// when it fails does the strategy re-solve the heat as a bipartite
// matching between role slots and qualified participants, using
// augmenting paths. The matching is complete: if any assignment of
// participants to slots satisfies the minima, it finds one (within the
// step budget).
type Backtracking struct {
	greedy   *Greedy
	maxSteps int
}

var _ types.RoleStrategy = (*Backtracking)(nil)

// BacktrackingOption configures a Backtracking strategy.
type BacktrackingOption func(*Backtracking)

// WithMaxSteps sets the augmenting-path step budget.
//
// Parameters:
//   - steps: Maximum candidate visits across the whole search
//
// Returns:
//   - BacktrackingOption: Configuration option
func WithMaxSteps(steps int) BacktrackingOption {
	return func(b *Backtracking) {
		b.maxSteps = steps
	}
}

// NewBacktracking creates a backtracking role assignment strategy.
//
// Returns:
//   - *Backtracking: Initialized strategy with the default step budget
//
// Example:
//
//	st := strategy.NewBacktracking(strategy.WithMaxSteps(50000))
//	sched, err := autologic.New(&cfg, roster, autologic.WithStrategy(st))
func NewBacktracking(opts ...BacktrackingOption) *Backtracking {
	b := &Backtracking{
		greedy:   NewGreedy(),
		maxSteps: defaultMaxSteps,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Assign assigns a role to every participant in the heat.
//
// Runs the greedy pass first; on an unfilled-role failure it restores
// the heat's assignments and solves the slot/candidate matching
// exactly. Overfilled pins are unrecoverable by reordering and fail
// immediately.
//
// Parameters:
//   - heat: Heat whose participants are assigned (mutated in place)
//   - minima: Per-role minimum staffing for this heat
//
// Returns:
//   - error: nil on success; *types.UnfilledRoleError when no complete
//     matching exists or the step budget is exceeded
func (b *Backtracking) Assign(heat *types.Heat, minima types.RoleMinima) error {
	participants := heat.Participants()
	snapshot := make([]types.Assignment, len(participants))
	for i, p := range participants {
		snapshot[i] = p.Assignment
	}

	err := b.greedy.Assign(heat, minima)
	if err == nil || !isUnfilled(err) {
		return err
	}

	for i, p := range participants {
		p.Assignment = snapshot[i]
	}

	return b.match(heat, minima)
}

// slot is one unit of a role's remaining minimum.
type slot struct {
	role types.Role
}

// match solves the heat as a bipartite matching: each unfilled role
// slot must be matched to a distinct qualified unassigned participant.
func (b *Backtracking) match(heat *types.Heat, minima types.RoleMinima) error {
	var slots []slot
	for _, role := range rolesByScarcity(heat, minima) {
		minimum := minima[role]
		pre := len(heat.Assigned(types.Assignment(role)))
		if pre > minimum && role != types.RoleInstructor {
			return fmt.Errorf("heat %d %s: %d pinned for minimum %d: %w",
				heat.Number, role, pre, minimum, types.ErrRoleOverfilled)
		}
		for i := pre; i < minimum; i++ {
			slots = append(slots, slot{role: role})
		}
	}

	candidates := heat.Available("")

	// matchedSlot[c] is the slot index matched to candidate c, or -1.
	matchedSlot := make([]int, len(candidates))
	for i := range matchedSlot {
		matchedSlot[i] = -1
	}
	// matchedCand[s] is the candidate index matched to slot s, or -1.
	matchedCand := make([]int, len(slots))
	for i := range matchedCand {
		matchedCand[i] = -1
	}

	steps := b.maxSteps
	for s := range slots {
		visited := make([]bool, len(candidates))
		if !augment(s, slots, candidates, visited, matchedSlot, matchedCand, &steps) {
			role := slots[s].role
			assigned := 0
			for prev := 0; prev < s; prev++ {
				if slots[prev].role == role && matchedCand[prev] >= 0 {
					assigned++
				}
			}
			return &types.UnfilledRoleError{Shortfall: types.RoleShortfall{
				Heat:     heat.Number,
				Role:     role,
				Required: minima[role],
				Assigned: len(heat.Assigned(types.Assignment(role))) + assigned,
			}}
		}
	}

	for s, c := range matchedCand {
		candidates[c].Assignment = types.Assignment(slots[s].role)
	}

	for _, p := range heat.Available("") {
		p.Assignment = types.AssignmentWorker
	}

	return nil
}

// augment searches for an augmenting path assigning slot s, displacing
// earlier matches when a displaced slot can be re-matched elsewhere.
func augment(s int, slots []slot, candidates []*types.Participant, visited []bool, matchedSlot, matchedCand []int, steps *int) bool {
	for c, p := range candidates {
		if visited[c] || !p.Quals.Qualified(slots[s].role) {
			continue
		}
		visited[c] = true

		*steps--
		if *steps < 0 {
			return false
		}

		if matchedSlot[c] == -1 || augment(matchedSlot[c], slots, candidates, visited, matchedSlot, matchedCand, steps) {
			matchedSlot[c] = s
			matchedCand[s] = c

			return true
		}
	}

	return false
}

func isUnfilled(err error) bool {
	var unfilled *types.UnfilledRoleError

	return errors.As(err, &unfilled)
}
