package types

// Roster is the entity graph for one scheduling run: every checked-in
// participant, the categories grouping them, and the heats they will be
// partitioned into.
//
// A roster is single-writer: one scheduling run owns exclusive mutation
// rights for its duration.
type Roster struct {
	// Participants in ingestion order.
	Participants []*Participant

	// Categories in first-seen order. Category order is the shuffle
	// domain of the partitioner, so it must be stable between runs for
	// a given seed to reproduce.
	Categories []*Category

	// Heats numbered 1..N.
	Heats []*Heat
}

// NewRoster builds a roster from participants, grouping them into
// categories by Class in first-seen order and creating numHeats empty
// heats.
func NewRoster(participants []*Participant, numHeats int) *Roster {
	r := &Roster{Participants: participants}

	byName := make(map[string]*Category)
	for _, p := range participants {
		c, ok := byName[p.Class]
		if !ok {
			c = &Category{Name: p.Class}
			byName[p.Class] = c
			r.Categories = append(r.Categories, c)
		}
		c.Participants = append(c.Participants, p)
	}

	for i := 1; i <= numHeats; i++ {
		r.Heats = append(r.Heats, &Heat{Number: i, roster: r})
	}

	return r
}

// Heat returns the heat with the given number, or nil if out of range.
func (r *Roster) Heat(number int) *Heat {
	if number < 1 || number > len(r.Heats) {
		return nil
	}

	return r.Heats[number-1]
}

// WorkingHeat returns the heat whose working slot equals the given
// slot, or nil if no heat works that slot.
func (r *Roster) WorkingHeat(slot int) *Heat {
	for _, h := range r.Heats {
		if h.Working() == slot {
			return h
		}
	}

	return nil
}

// Novices returns the number of novice participants in the roster.
func (r *Roster) Novices() int {
	n := 0
	for _, p := range r.Participants {
		if p.Novice {
			n++
		}
	}

	return n
}

// Qualified returns the number of participants qualified for the given
// role across the whole roster.
func (r *Roster) Qualified(role Role) int {
	n := 0
	for _, p := range r.Participants {
		if p.Quals.Qualified(role) {
			n++
		}
	}

	return n
}

// Reset clears every category/heat link and restores every participant
// to its pre-attempt assignment (pinned special or unset). Each
// partitioner attempt starts from this clean slate.
func (r *Roster) Reset() {
	for _, c := range r.Categories {
		c.Heat = nil
	}
	for _, p := range r.Participants {
		p.ResetAssignment()
	}
}
