package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRoster(t *testing.T) {
	t.Run("groups participants into categories by class", func(t *testing.T) {
		participants := []*Participant{
			{ID: "1", Class: "CS"},
			{ID: "2", Class: "DS"},
			{ID: "3", Class: "CS"},
			{ID: "4", Class: "ES"},
		}

		roster := NewRoster(participants, 2)

		require.Len(t, roster.Categories, 3)
		require.Equal(t, "CS", roster.Categories[0].Name, "categories keep first-seen order")
		require.Equal(t, "DS", roster.Categories[1].Name)
		require.Equal(t, "ES", roster.Categories[2].Name)
		require.Equal(t, 2, roster.Categories[0].Size())
	})

	t.Run("creates numbered heats", func(t *testing.T) {
		roster := NewRoster([]*Participant{{ID: "1", Class: "CS"}}, 3)

		require.Len(t, roster.Heats, 3)
		require.Equal(t, 1, roster.Heats[0].Number)
		require.Equal(t, 3, roster.Heats[2].Number)
		require.Nil(t, roster.Heat(0))
		require.Nil(t, roster.Heat(4))
	})
}

func TestRoster_Reset(t *testing.T) {
	participants := []*Participant{
		{ID: "1", Class: "CS"},
		{ID: "2", Class: "CS", Special: AssignmentSpecial, Assignment: AssignmentSpecial},
		{ID: "3", Class: "DS"},
	}
	roster := NewRoster(participants, 2)

	roster.Categories[0].SetHeat(roster.Heats[0])
	roster.Categories[1].SetHeat(roster.Heats[1])
	participants[0].Assignment = AssignmentTiming
	participants[2].Assignment = AssignmentWorker

	roster.Reset()

	t.Run("clears category heat links", func(t *testing.T) {
		for _, c := range roster.Categories {
			require.Nil(t, c.Heat)
		}
	})

	t.Run("clears attempt assignments", func(t *testing.T) {
		require.Equal(t, AssignmentUnset, participants[0].Assignment)
		require.Equal(t, AssignmentUnset, participants[2].Assignment)
	})

	t.Run("preserves pinned special assignments", func(t *testing.T) {
		require.Equal(t, AssignmentSpecial, participants[1].Assignment)
	})
}

func TestHeat_Available(t *testing.T) {
	participants := []*Participant{
		{ID: "1", Class: "CS", Quals: Qualifications{Timing: true}},
		{ID: "2", Class: "CS", Quals: Qualifications{Timing: true, Grid: true}},
		{ID: "3", Class: "CS"},
	}
	roster := NewRoster(participants, 2)
	roster.Categories[0].SetHeat(roster.Heats[0])
	h := roster.Heats[0]

	t.Run("filters by qualification and assignment", func(t *testing.T) {
		require.Len(t, h.Available(RoleTiming), 2)
		require.Len(t, h.Available(RoleGrid), 1)
		require.Len(t, h.Available(""), 3, "empty role means any unassigned")

		participants[0].Assignment = AssignmentTiming
		defer participants[0].ResetAssignment()

		require.Len(t, h.Available(RoleTiming), 1)
		require.Len(t, h.Available(""), 2)
	})

	t.Run("qualified counts ignore assignment state", func(t *testing.T) {
		participants[0].Assignment = AssignmentTiming
		defer participants[0].ResetAssignment()

		require.Equal(t, 2, h.Qualified(RoleTiming))
	})

	t.Run("assigned filters by current assignment", func(t *testing.T) {
		participants[0].Assignment = AssignmentTiming
		defer participants[0].ResetAssignment()

		require.Len(t, h.Assigned(AssignmentTiming), 1)
		require.Empty(t, h.Assigned(AssignmentGrid))
	})
}

func TestQualifications(t *testing.T) {
	q := Qualifications{Instructor: true, Captain: true}

	require.True(t, q.Qualified(RoleInstructor))
	require.True(t, q.Qualified(RoleCaptain))
	require.False(t, q.Qualified(RoleTiming))
	require.Equal(t, 2, q.Count())
}
