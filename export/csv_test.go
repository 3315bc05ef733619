package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuavictorchen/autologic-sub000/types"
)

// scheduledRoster builds a three-heat roster with one category per
// heat and simple assignments.
func scheduledRoster(t *testing.T) *types.Roster {
	t.Helper()

	participants := []*types.Participant{
		{ID: "1", Name: "Smith, Alice", Class: "CS", RawClass: "NOVCS", Number: "11", Assignment: types.AssignmentWorker, Station: 1},
		{ID: "2", Name: "Jones, Bob", Class: "CS", RawClass: "CS", Number: "22", Assignment: types.AssignmentCaptain, Station: 2},
		{ID: "3", Name: "Wu, Carol", Class: "DS", RawClass: "DS", Number: "33", Assignment: types.AssignmentTiming},
		{ID: "4", Name: "Diaz, Dan", Class: "ES", RawClass: "ES", Number: "44", Assignment: types.AssignmentWorker, Station: 1},
	}
	roster := types.NewRoster(participants, 3)
	roster.Categories[0].SetHeat(roster.Heats[0])
	roster.Categories[1].SetHeat(roster.Heats[1])
	roster.Categories[2].SetHeat(roster.Heats[2])

	return roster
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestWriteWorkAssignments(t *testing.T) {
	t.Run("orders rows by working slot", func(t *testing.T) {
		roster := scheduledRoster(t)
		var buf bytes.Buffer

		err := WriteWorkAssignments(&buf, roster)

		require.NoError(t, err)
		rows := parseCSV(t, buf.Bytes())
		require.Equal(t, workHeader, rows[0])
		require.Len(t, rows, 5)

		prev := 0
		for _, row := range rows[1:] {
			slot, err := strconv.Atoi(row[0])
			require.NoError(t, err)
			require.GreaterOrEqual(t, slot, prev, "working slots ascend")
			prev = slot
		}
	})

	t.Run("rows carry raw class station and assignment", func(t *testing.T) {
		roster := scheduledRoster(t)
		var buf bytes.Buffer

		require.NoError(t, WriteWorkAssignments(&buf, roster))

		rows := parseCSV(t, buf.Bytes())
		byName := make(map[string][]string)
		for _, row := range rows[1:] {
			byName[row[1]] = row
		}

		alice := byName["Smith, Alice"]
		require.Equal(t, "NOVCS", alice[2])
		require.Equal(t, "11", alice[3])
		require.Equal(t, "worker", alice[4])
		require.Equal(t, "1", alice[5])
		require.Empty(t, alice[6], "checked_in column left blank for hand-marking")

		carol := byName["Wu, Carol"]
		require.Equal(t, "timing", carol[4])
		require.Empty(t, carol[5], "non-station roles leave station blank")
	})

	t.Run("names sort within a heat", func(t *testing.T) {
		roster := scheduledRoster(t)
		var buf bytes.Buffer

		require.NoError(t, WriteWorkAssignments(&buf, roster))

		rows := parseCSV(t, buf.Bytes())
		// Heat 1 (CS) works one slot with both members; Jones sorts
		// before Smith.
		var heat1 []string
		for _, row := range rows[1:] {
			if row[2] == "CS" || row[2] == "NOVCS" {
				heat1 = append(heat1, row[1])
			}
		}
		require.Equal(t, []string{"Jones, Bob", "Smith, Alice"}, heat1)
	})

	t.Run("fails on an unscheduled roster", func(t *testing.T) {
		roster := types.NewRoster([]*types.Participant{{ID: "1", Class: "CS"}}, 3)
		var buf bytes.Buffer

		err := WriteWorkAssignments(&buf, roster)

		require.ErrorIs(t, err, types.ErrMalformedExport)
	})
}

func TestWriteRunOrder(t *testing.T) {
	roster := scheduledRoster(t)
	var buf bytes.Buffer

	err := WriteRunOrder(&buf, roster)

	require.NoError(t, err)
	rows := parseCSV(t, buf.Bytes())
	require.Equal(t, runHeader, rows[0])
	require.Len(t, rows, 5)

	require.Equal(t, "1", rows[1][0], "heat 1 runs first")
	require.Equal(t, "Jones, Bob", rows[1][1])
	require.Equal(t, "Smith, Alice", rows[2][1])
	require.Equal(t, "2", rows[3][0])
	require.Equal(t, "3", rows[4][0])
	for _, row := range rows[1:] {
		require.Empty(t, row[4], "tally column left blank")
	}
}
