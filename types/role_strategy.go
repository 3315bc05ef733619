package types

// RoleStrategy assigns roles to the participants of a single heat.
//
// Implementations must leave every participant in the heat with
// exactly one assignment on success: pinned specials first, then the
// required roles up to their minima, then worker for everyone left.
// Selection must be deterministic given the heat's stable participant
// order.
//
// Failure is a per-attempt signal: implementations return an
// *UnfilledRoleError (wrapping ErrRoleUnfilled) or ErrRoleOverfilled,
// which the scheduler consumes to reject the attempt. Strategies never
// panic on infeasible heats.
type RoleStrategy interface {
	// Assign assigns a role to every participant in the heat so that
	// minima are met: exact counts for non-instructor roles, at-least
	// for instructors. Returns nil on success.
	Assign(heat *Heat, minima RoleMinima) error
}
