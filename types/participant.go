package types

// Participant is a single entrant in the event.
//
// Identity and qualifications are fixed at construction. Assignment and
// Station are the two mutable fields: the scheduler rewrites Assignment
// on every attempt and the station assigner writes Station once per
// accepted heat.
type Participant struct {
	// ID uniquely identifies the participant (member number, or full
	// name when no member number exists).
	ID string

	// Name is the display name, "Last, First".
	Name string

	// Class is the category grouping key the participant competes
	// under (e.g. "CS"). Participants with the same Class always land
	// in the same heat.
	Class string

	// RawClass is the class label exactly as exported (e.g. "NOVCS"),
	// kept for reporting.
	RawClass string

	// Number is the car number as exported.
	Number string

	// Novice marks first-season entrants; novice counts drive both the
	// inter-heat novice balance and the instructor minimum of the
	// complementary heat.
	Novice bool

	// Quals records which roles the participant may hold.
	Quals Qualifications

	// Special pins the participant to a fixed assignment before any
	// role selection happens. Empty when not pinned.
	Special Assignment

	// Assignment is the duty the participant holds for this schedule.
	// Rewritten wholesale on every partitioner attempt.
	Assignment Assignment

	// Station is the assigned station number in 1..S, or 0 when unset.
	// Only workers and captains receive stations.
	Station int
}

// ResetAssignment clears the participant back to its pre-attempt state:
// the pinned special assignment when one exists, unset otherwise.
func (p *Participant) ResetAssignment() {
	if p.Special != AssignmentUnset {
		p.Assignment = p.Special
	} else {
		p.Assignment = AssignmentUnset
	}
}
