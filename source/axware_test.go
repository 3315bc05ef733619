package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuavictorchen/autologic-sub000/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const sampleExport = "First Name\tLast Name\tMember #\tClass\tNumber\tCheckin\n" +
	"Alice\tSmith\t123\tNOVCS\t11\tYes\n" +
	"Bob\tJones\t456\tSR2\t22\tyes\n" +
	"Carol\tWu\t\tDS\t33\tYes\n" +
	"Dan\tDiaz\t789\tP1\t44\tNo\n"

const sampleAttributes = "id,instructor,timing,grid,start,captain\n" +
	"123,x,,,,\n" +
	"456,,1,1,,\n" +
	"999,x,x,x,x,x\n"

func TestAXWare_Participants(t *testing.T) {
	exportPath := writeFile(t, "event.tsv", sampleExport)
	attrPath := writeFile(t, "members.csv", sampleAttributes)

	t.Run("parses identity class and check-in state", func(t *testing.T) {
		src := NewAXWare(exportPath, attrPath, nil)

		checkedIn, noShows, err := src.Participants(context.Background())

		require.NoError(t, err)
		require.Len(t, checkedIn, 3)
		require.Len(t, noShows, 1)

		alice := checkedIn[0]
		require.Equal(t, "123", alice.ID)
		require.Equal(t, "Smith, Alice", alice.Name)
		require.Equal(t, "CS", alice.Class, "novice prefix stripped for grouping")
		require.Equal(t, "NOVCS", alice.RawClass)
		require.Equal(t, "11", alice.Number)
		require.True(t, alice.Novice)

		bob := checkedIn[1]
		require.Equal(t, "SR", bob.Class, "senior family collapses")
		require.False(t, bob.Novice)

		carol := checkedIn[2]
		require.Equal(t, "Carol Wu", carol.ID, "full name stands in for a missing member number")

		require.Equal(t, "789", noShows[0].ID)
		require.Equal(t, "P", noShows[0].Class)
	})

	t.Run("joins qualifications by member id", func(t *testing.T) {
		src := NewAXWare(exportPath, attrPath, nil)

		checkedIn, _, err := src.Participants(context.Background())

		require.NoError(t, err)
		require.Equal(t, types.Qualifications{Instructor: true}, checkedIn[0].Quals)
		require.Equal(t, types.Qualifications{Timing: true, Grid: true}, checkedIn[1].Quals)
		require.Zero(t, checkedIn[2].Quals, "no attributes row means no qualifications")
	})

	t.Run("applies special assignments by member id", func(t *testing.T) {
		src := NewAXWare(exportPath, attrPath, map[string]types.Assignment{
			"456": types.AssignmentSpecial,
		})

		checkedIn, _, err := src.Participants(context.Background())

		require.NoError(t, err)
		require.Equal(t, types.AssignmentSpecial, checkedIn[1].Special)
		require.Equal(t, types.AssignmentSpecial, checkedIn[1].Assignment)
		require.Equal(t, types.AssignmentUnset, checkedIn[0].Special)
	})

	t.Run("tolerates a byte order mark", func(t *testing.T) {
		bomExport := writeFile(t, "bom.tsv", "\ufeff"+sampleExport)
		src := NewAXWare(bomExport, attrPath, nil)

		checkedIn, _, err := src.Participants(context.Background())

		require.NoError(t, err)
		require.Len(t, checkedIn, 3)
	})

	t.Run("fails on missing export columns", func(t *testing.T) {
		badExport := writeFile(t, "bad.tsv", "First Name\tLast Name\nAlice\tSmith\n")
		src := NewAXWare(badExport, attrPath, nil)

		_, _, err := src.Participants(context.Background())

		require.ErrorIs(t, err, types.ErrMalformedExport)
		require.Contains(t, err.Error(), "Member #")
	})

	t.Run("fails on missing attributes id column", func(t *testing.T) {
		badAttrs := writeFile(t, "bad.csv", "member,instructor\n123,x\n")
		src := NewAXWare(exportPath, badAttrs, nil)

		_, _, err := src.Participants(context.Background())

		require.ErrorIs(t, err, types.ErrMalformedExport)
	})

	t.Run("fails on missing files", func(t *testing.T) {
		src := NewAXWare(filepath.Join(t.TempDir(), "nope.tsv"), attrPath, nil)

		_, _, err := src.Participants(context.Background())

		require.Error(t, err)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		src := NewAXWare(exportPath, attrPath, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := src.Participants(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestStatic(t *testing.T) {
	a := &types.Participant{ID: "a", Class: "CS"}
	b := &types.Participant{ID: "b", Class: "DS"}

	t.Run("returns fixed lists", func(t *testing.T) {
		src := NewStatic([]*types.Participant{a}, []*types.Participant{b})

		checkedIn, noShows, err := src.Participants(context.Background())

		require.NoError(t, err)
		require.Equal(t, []*types.Participant{a}, checkedIn)
		require.Equal(t, []*types.Participant{b}, noShows)
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		src := NewStatic([]*types.Participant{a, b}, nil)

		checkedIn, _, err := src.Participants(context.Background())
		require.NoError(t, err)

		checkedIn[0] = nil
		again, _, err := src.Participants(context.Background())
		require.NoError(t, err)
		require.Same(t, a, again[0])
	})

	t.Run("update replaces the lists", func(t *testing.T) {
		src := NewStatic([]*types.Participant{a}, nil)
		src.Update([]*types.Participant{a, b}, nil)

		checkedIn, _, err := src.Participants(context.Background())

		require.NoError(t, err)
		require.Len(t, checkedIn, 2)
	})
}
