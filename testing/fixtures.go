package testing

import (
	"fmt"

	"github.com/joshuavictorchen/autologic-sub000/types"
)

// NewParticipant creates a participant fixture with the given identity
// and qualifications. The ID doubles as the display name.
//
// Parameters:
//   - id: Participant ID and name
//   - class: Category grouping key
//   - novice: Novice flag
//   - roles: Roles the participant is qualified for
//
// Returns:
//   - *types.Participant: Fixture participant
func NewParticipant(id, class string, novice bool, roles ...types.Role) *types.Participant {
	return &types.Participant{
		ID:       id,
		Name:     id,
		Class:    class,
		RawClass: class,
		Novice:   novice,
		Quals:    QualsFor(roles...),
	}
}

// QualsFor builds a Qualifications record covering the given roles.
func QualsFor(roles ...types.Role) types.Qualifications {
	var q types.Qualifications
	for _, role := range roles {
		switch role {
		case types.RoleInstructor:
			q.Instructor = true
		case types.RoleTiming:
			q.Timing = true
		case types.RoleGrid:
			q.Grid = true
		case types.RoleStart:
			q.Start = true
		case types.RoleCaptain:
			q.Captain = true
		}
	}

	return q
}

// UniformRoster builds a roster of numCategories categories with
// categorySize participants each. Within every category, one
// participant is qualified per role in canonical order (cycling when
// the category is larger than the role set) and the last participant
// is a novice.
//
// The layout guarantees every balanced partition can staff its role
// minima, so scheduler tests accept on an early attempt.
//
// Parameters:
//   - numCategories: Number of categories
//   - categorySize: Participants per category
//   - numHeats: Heat count for the roster
//
// Returns:
//   - *types.Roster: Fixture roster
func UniformRoster(numCategories, categorySize, numHeats int) *types.Roster {
	var participants []*types.Participant
	for c := 0; c < numCategories; c++ {
		class := fmt.Sprintf("C%02d", c)
		for i := 0; i < categorySize; i++ {
			role := types.Roles[i%len(types.Roles)]
			novice := i == categorySize-1
			id := fmt.Sprintf("%s-%02d", class, i)
			participants = append(participants, NewParticipant(id, class, novice, role))
		}
	}

	return types.NewRoster(participants, numHeats)
}
