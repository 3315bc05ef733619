package types

// Heat is a timed competition slot holding a set of categories.
//
// A heat's participants compete during its running slot and perform
// course-worker duties during its working slot; the two differ so
// nobody works their own runs.
type Heat struct {
	// Number identifies the heat, 1..N.
	Number int

	roster *Roster
}

// Running returns the slot in which this heat's participants compete.
func (h *Heat) Running() int {
	return h.Number
}

// Working returns the slot in which this heat's participants work
// course duties.
//
// The rotation offset is 5 when the event has four or more heats and 3
// otherwise, matching the rotation used on course.
func (h *Heat) Working() int {
	n := len(h.roster.Heats)
	offset := 3
	if n >= 4 {
		offset = 5
	}

	return (h.Running()+offset)%n + 1
}

// Complement returns the heat that is running while this heat works.
//
// The complement's novice count drives this heat's instructor minimum,
// since instructors ride along during the complement's runs.
func (h *Heat) Complement() *Heat {
	for _, other := range h.roster.Heats {
		if other.Running() == h.Working() {
			return other
		}
	}

	// Unreachable: Working is always in 1..N.
	return nil
}

// Categories returns the categories assigned to this heat, in roster
// order.
func (h *Heat) Categories() []*Category {
	var cats []*Category
	for _, c := range h.roster.Categories {
		if c.Heat == h {
			cats = append(cats, c)
		}
	}

	return cats
}

// Participants returns the participants in this heat, in category then
// ingestion order. The order is stable across calls, which keeps role
// selection deterministic.
func (h *Heat) Participants() []*Participant {
	var parts []*Participant
	for _, c := range h.Categories() {
		parts = append(parts, c.Participants...)
	}

	return parts
}

// Size returns the number of participants in the heat.
func (h *Heat) Size() int {
	n := 0
	for _, c := range h.Categories() {
		n += c.Size()
	}

	return n
}

// Novices returns the number of novice participants in the heat.
func (h *Heat) Novices() int {
	n := 0
	for _, c := range h.Categories() {
		n += c.Novices()
	}

	return n
}

// Qualified returns the number of participants in the heat qualified
// for the given role, regardless of current assignment.
func (h *Heat) Qualified(role Role) int {
	n := 0
	for _, p := range h.Participants() {
		if p.Quals.Qualified(role) {
			n++
		}
	}

	return n
}

// Available returns the participants qualified for the given role that
// have no assignment yet, in stable heat order. A nil role returns all
// unassigned participants.
func (h *Heat) Available(role Role) []*Participant {
	var avail []*Participant
	for _, p := range h.Participants() {
		if p.Assignment.IsSet() {
			continue
		}
		if role == "" || p.Quals.Qualified(role) {
			avail = append(avail, p)
		}
	}

	return avail
}

// Assigned returns the participants in the heat currently holding the
// given assignment.
func (h *Heat) Assigned(a Assignment) []*Participant {
	var matched []*Participant
	for _, p := range h.Participants() {
		if p.Assignment == a {
			matched = append(matched, p)
		}
	}

	return matched
}
