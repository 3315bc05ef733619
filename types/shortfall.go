package types

import "fmt"

// RoleShortfall describes one unmet role minimum: which heat, which
// role, how many were required and how many could be staffed. Heat 0
// means the shortfall is roster-wide (precondition check).
type RoleShortfall struct {
	Heat     int
	Role     Role
	Required int
	Assigned int
}

// Missing returns the number of unfilled slots.
func (s RoleShortfall) Missing() int {
	return s.Required - s.Assigned
}

// UnfilledRoleError reports that a heat attempt could not staff a
// required role. It is a per-attempt signal consumed by the scheduler,
// never surfaced past the pipeline boundary.
type UnfilledRoleError struct {
	Shortfall RoleShortfall
}

func (e *UnfilledRoleError) Error() string {
	s := e.Shortfall
	return fmt.Sprintf("heat %d: %d of %d %s slots filled", s.Heat, s.Assigned, s.Required, s.Role)
}

// Unwrap allows errors.Is(err, ErrRoleUnfilled).
func (e *UnfilledRoleError) Unwrap() error {
	return ErrRoleUnfilled
}

// InfeasibleError reports a structural impossibility detected before
// the retry loop: some role's roster-wide qualified count cannot cover
// minimum × heat count. It wraps ErrConfigurationInfeasible.
type InfeasibleError struct {
	Shortfalls []RoleShortfall
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("%v: %d role(s) lack qualified participants", ErrConfigurationInfeasible, len(e.Shortfalls))
}

// Unwrap allows errors.Is(err, ErrConfigurationInfeasible).
func (e *InfeasibleError) Unwrap() error {
	return ErrConfigurationInfeasible
}
