package types

// Category is a competition class and the unit moved between heats.
//
// A category is never split: all of its participants inherit the
// category's heat.
type Category struct {
	// Name is the category grouping key (Participant.Class).
	Name string

	// Participants lists the members in stable ingestion order.
	Participants []*Participant

	// Heat is the assigned heat, or nil before partitioning.
	Heat *Heat
}

// Size returns the number of participants in the category.
func (c *Category) Size() int {
	return len(c.Participants)
}

// Novices returns the number of novice participants in the category.
func (c *Category) Novices() int {
	n := 0
	for _, p := range c.Participants {
		if p.Novice {
			n++
		}
	}

	return n
}

// SetHeat assigns the category to a heat.
func (c *Category) SetHeat(h *Heat) {
	c.Heat = h
}
