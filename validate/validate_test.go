package validate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuavictorchen/autologic-sub000/strategy"
	"github.com/joshuavictorchen/autologic-sub000/types"
)

// scheduledRoster builds a 12-category roster dealt evenly into 3
// heats with every role minimum staffed.
func scheduledRoster(t *testing.T) (*types.Roster, types.Rules) {
	t.Helper()

	var participants []*types.Participant
	for c := 0; c < 12; c++ {
		class := fmt.Sprintf("C%02d", c)
		for i, role := range types.Roles {
			p := &types.Participant{
				ID:    fmt.Sprintf("%s-%d", class, i),
				Name:  fmt.Sprintf("%s-%d", class, i),
				Class: class,
			}
			switch role {
			case types.RoleInstructor:
				p.Quals.Instructor = true
			case types.RoleTiming:
				p.Quals.Timing = true
			case types.RoleGrid:
				p.Quals.Grid = true
			case types.RoleStart:
				p.Quals.Start = true
			case types.RoleCaptain:
				p.Quals.Captain = true
			}
			participants = append(participants, p)
		}
		// One unqualified novice per category; novices take worker duty
		// unless a test promotes them.
		participants = append(participants, &types.Participant{
			ID:     fmt.Sprintf("%s-nov", class),
			Name:   fmt.Sprintf("%s-nov", class),
			Class:  class,
			Novice: true,
		})
	}

	roster := types.NewRoster(participants, 3)
	for i, c := range roster.Categories {
		c.SetHeat(roster.Heats[i%3])
	}

	rules := types.NewRules(roster, 2, 25, 10, 3)
	st := strategy.NewGreedy()
	for _, h := range roster.Heats {
		require.NoError(t, st.Assign(h, rules.HeatMinima(h)))
	}

	return roster, rules
}

func TestEvent(t *testing.T) {
	t.Run("fully staffed balanced schedule passes", func(t *testing.T) {
		roster, rules := scheduledRoster(t)

		report := Event(roster, rules)

		require.True(t, report.Valid())
		require.Equal(t, 72, report.TotalParticipants)
		require.Equal(t, 72, report.SumHeatSizes)
		require.Len(t, report.Heats, 3)
		require.Empty(t, report.Shortfalls())
		require.Empty(t, report.NoviceWarnings)
		for _, hr := range report.Heats {
			require.True(t, hr.SizeOK)
			require.True(t, hr.NovicesOK)
			require.Equal(t, 24, hr.Size)
			require.Equal(t, 4, hr.Novices)
		}
	})

	t.Run("missing role staffing fails with a shortfall", func(t *testing.T) {
		roster, rules := scheduledRoster(t)
		timing := roster.Heats[0].Assigned(types.AssignmentTiming)
		timing[0].Assignment = types.AssignmentWorker

		report := Event(roster, rules)

		require.False(t, report.Valid())
		shortfalls := report.Shortfalls()
		require.Len(t, shortfalls, 1)
		require.Equal(t, 1, shortfalls[0].Heat)
		require.Equal(t, types.RoleTiming, shortfalls[0].Role)
		require.Equal(t, 1, shortfalls[0].Missing())
	})

	t.Run("overfilled exact role fails without a shortfall", func(t *testing.T) {
		roster, rules := scheduledRoster(t)
		h := roster.Heats[0]
		workers := h.Assigned(types.AssignmentWorker)
		require.NotEmpty(t, workers)
		workers[0].Assignment = types.AssignmentTiming

		report := Event(roster, rules)

		require.False(t, report.Valid())
		require.Empty(t, report.Shortfalls(), "overfill is not a shortfall")
	})

	t.Run("extra instructors still pass", func(t *testing.T) {
		roster, rules := scheduledRoster(t)
		h := roster.Heats[0]
		workers := h.Assigned(types.AssignmentWorker)
		require.NotEmpty(t, workers)
		workers[0].Assignment = types.AssignmentInstructor

		report := Event(roster, rules)

		require.True(t, report.Valid())
	})

	t.Run("unbalanced heats fail the size check", func(t *testing.T) {
		roster, rules := scheduledRoster(t)
		moved := roster.Heats[1].Categories()[0]
		moved.SetHeat(roster.Heats[0])

		report := Event(roster, rules)

		require.False(t, report.Valid())
		require.False(t, report.Heats[0].SizeOK)
		require.False(t, report.Heats[1].SizeOK)
		require.Equal(t, report.TotalParticipants, report.SumHeatSizes, "no participants lost")
	})

	t.Run("novices holding roles produce warnings not failures", func(t *testing.T) {
		roster, rules := scheduledRoster(t)
		h := roster.Heats[0]

		var novice *types.Participant
		for _, p := range h.Assigned(types.AssignmentWorker) {
			if p.Novice {
				novice = p

				break
			}
		}
		require.NotNil(t, novice)
		novice.Assignment = types.AssignmentInstructor

		report := Event(roster, rules)

		require.True(t, report.Valid())
		require.Len(t, report.NoviceWarnings, 1)
		require.Same(t, novice, report.NoviceWarnings[0])
	})
}
