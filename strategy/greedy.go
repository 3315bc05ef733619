package strategy

import (
	"fmt"
	"sort"

	"github.com/joshuavictorchen/autologic-sub000/types"
)

// Greedy implements scarcity-ordered greedy role assignment.
type Greedy struct{}

var _ types.RoleStrategy = (*Greedy)(nil)

// NewGreedy creates a new greedy role assignment strategy.
//
// The strategy fills roles in ascending order of slack (qualified
// count minus minimum), so the scarcest role picks first and is never
// starved by a less-scarce role consuming a shared candidate. Within a
// role it takes the first available participant in the heat's stable
// order, which keeps assignment deterministic and reproducible.
//
// Returns:
//   - *Greedy: Initialized greedy strategy
//
// Example:
//
//	sched, err := autologic.New(&cfg, roster, autologic.WithStrategy(strategy.NewGreedy()))
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Assign assigns a role to every participant in the heat.
//
// The algorithm:
//  1. Pinned assignments are already in place (applied during the
//     roster reset) and are credited against their role's minimum.
//  2. Roles are ordered by ascending slack, ties broken by canonical
//     role order.
//  3. Each remaining slot takes the first available qualified
//     participant; an empty candidate pool fails the attempt.
//  4. Non-instructor roles stop exactly at their minimum even if
//     qualified candidates remain.
//  5. Everyone still unassigned becomes a worker.
//
// Parameters:
//   - heat: Heat whose participants are assigned (mutated in place)
//   - minima: Per-role minimum staffing for this heat
//
// Returns:
//   - error: nil on success; *types.UnfilledRoleError when a required
//     slot has no candidate; types.ErrRoleOverfilled when pins exceed
//     an exact minimum
func (g *Greedy) Assign(heat *types.Heat, minima types.RoleMinima) error {
	for _, role := range rolesByScarcity(heat, minima) {
		minimum := minima[role]
		pre := len(heat.Assigned(types.Assignment(role)))
		if pre > minimum && role != types.RoleInstructor {
			return fmt.Errorf("heat %d %s: %d pinned for minimum %d: %w",
				heat.Number, role, pre, minimum, types.ErrRoleOverfilled)
		}

		for filled := pre; filled < minimum; filled++ {
			available := heat.Available(role)
			if len(available) == 0 {
				return &types.UnfilledRoleError{Shortfall: types.RoleShortfall{
					Heat:     heat.Number,
					Role:     role,
					Required: minimum,
					Assigned: filled,
				}}
			}
			available[0].Assignment = types.Assignment(role)
		}
	}

	for _, p := range heat.Available("") {
		p.Assignment = types.AssignmentWorker
	}

	return nil
}

// rolesByScarcity orders the required roles by ascending slack:
// qualified-and-unassigned count minus minimum, snapshotted before any
// role selection happens. Ties keep canonical role order.
func rolesByScarcity(heat *types.Heat, minima types.RoleMinima) []types.Role {
	ordered := make([]types.Role, len(types.Roles))
	copy(ordered, types.Roles)

	slack := make(map[types.Role]int, len(ordered))
	for _, role := range ordered {
		slack[role] = len(heat.Available(role)) - minima[role]
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return slack[ordered[i]] < slack[ordered[j]]
	})

	return ordered
}
