package types

// Role identifies a functional duty a participant can be qualified for.
//
// The role set is closed and known at build time. Qualifications are a
// fixed-shape record with one boolean per role rather than ad hoc
// attributes, so the compiler can see every role-bearing field.
type Role string

// Recognized roles, in canonical order.
const (
	RoleInstructor Role = "instructor"
	RoleTiming     Role = "timing"
	RoleGrid       Role = "grid"
	RoleStart      Role = "start"
	RoleCaptain    Role = "captain"
)

// Roles lists all required roles in canonical order.
//
// The order is used as the deterministic tie-break when two roles have
// equal scarcity during assignment.
var Roles = []Role{RoleInstructor, RoleTiming, RoleGrid, RoleStart, RoleCaptain}

// Assignment is the single duty a participant holds for the event.
//
// An Assignment is either one of the required roles, the pinned
// "special" override, the default "worker", or unset.
type Assignment string

// Assignment values.
const (
	AssignmentUnset      Assignment = ""
	AssignmentSpecial    Assignment = "special"
	AssignmentInstructor Assignment = Assignment(RoleInstructor)
	AssignmentTiming     Assignment = Assignment(RoleTiming)
	AssignmentGrid       Assignment = Assignment(RoleGrid)
	AssignmentStart      Assignment = Assignment(RoleStart)
	AssignmentCaptain    Assignment = Assignment(RoleCaptain)
	AssignmentWorker     Assignment = "worker"
)

// IsSet reports whether the assignment has been decided.
func (a Assignment) IsSet() bool {
	return a != AssignmentUnset
}

// Qualifications records which roles a participant may hold.
//
// Eligibility is independent of the participant's current assignment:
// a qualified participant may still end up as a plain worker.
type Qualifications struct {
	Instructor bool `yaml:"instructor"`
	Timing     bool `yaml:"timing"`
	Grid       bool `yaml:"grid"`
	Start      bool `yaml:"start"`
	Captain    bool `yaml:"captain"`
}

// Qualified reports whether the record includes the given role.
func (q Qualifications) Qualified(role Role) bool {
	switch role {
	case RoleInstructor:
		return q.Instructor
	case RoleTiming:
		return q.Timing
	case RoleGrid:
		return q.Grid
	case RoleStart:
		return q.Start
	case RoleCaptain:
		return q.Captain
	default:
		return false
	}
}

// Count returns the number of roles the record includes.
func (q Qualifications) Count() int {
	n := 0
	for _, role := range Roles {
		if q.Qualified(role) {
			n++
		}
	}

	return n
}
