package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/joshuavictorchen/autologic-sub000/types"
)

// workHeader is the work assignment sheet's column layout. The
// checked_in column is left blank for hand-marking at the worker
// check-in table.
var workHeader = []string{"heat", "name", "class", "number", "assignment", "station", "checked_in"}

// runHeader is the run order sheet's column layout. The tally column
// is left blank for hand-marking runs taken.
var runHeader = []string{"heat", "name", "class", "number", "tally"}

// WriteWorkAssignments writes the work assignment sheet.
//
// Rows are grouped by working slot in ascending order, then sorted by
// participant name within each group, so the sheet reads in the order
// workers report to course.
//
// Parameters:
//   - w: Destination writer
//   - roster: Roster holding an accepted schedule
//
// Returns:
//   - error: Write error, or ErrMalformedExport when the roster holds
//     no accepted schedule
func WriteWorkAssignments(w io.Writer, roster *types.Roster) error {
	for _, p := range roster.Participants {
		if !p.Assignment.IsSet() {
			return fmt.Errorf("%w: participant %s holds no assignment", types.ErrMalformedExport, p.ID)
		}
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(workHeader); err != nil {
		return fmt.Errorf("write work assignment header: %w", err)
	}

	for slot := 1; slot <= len(roster.Heats); slot++ {
		h := roster.WorkingHeat(slot)
		if h == nil {
			return fmt.Errorf("%w: no heat works slot %d", types.ErrMalformedExport, slot)
		}

		for _, p := range byName(h.Participants()) {
			station := ""
			if p.Station > 0 {
				station = strconv.Itoa(p.Station)
			}
			row := []string{
				strconv.Itoa(h.Working()),
				p.Name,
				p.RawClass,
				p.Number,
				string(p.Assignment),
				station,
				"",
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("write work assignment row: %w", err)
			}
		}
	}

	writer.Flush()

	return writer.Error()
}

// WriteRunOrder writes the run order sheet, grouped by running slot in
// ascending order and sorted by participant name within each heat.
//
// Parameters:
//   - w: Destination writer
//   - roster: Roster holding an accepted schedule
//
// Returns:
//   - error: Write error
func WriteRunOrder(w io.Writer, roster *types.Roster) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(runHeader); err != nil {
		return fmt.Errorf("write run order header: %w", err)
	}

	for _, h := range roster.Heats {
		for _, p := range byName(h.Participants()) {
			row := []string{
				strconv.Itoa(h.Running()),
				p.Name,
				p.RawClass,
				p.Number,
				"",
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("write run order row: %w", err)
			}
		}
	}

	writer.Flush()

	return writer.Error()
}

// SaveWorkAssignments writes the work assignment sheet to
// "<name>.csv".
//
// Parameters:
//   - name: Event name, used as the file stem
//   - roster: Roster holding an accepted schedule
//
// Returns:
//   - string: Path written
//   - error: File or write error
func SaveWorkAssignments(name string, roster *types.Roster) (string, error) {
	path := name + ".csv"

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create work assignment sheet: %w", err)
	}

	if err := WriteWorkAssignments(f, roster); err != nil {
		f.Close()

		return "", err
	}

	return path, f.Close()
}

// byName returns the participants sorted by display name. The input
// slice is freshly built by Heat.Participants, so sorting in place is
// safe.
func byName(parts []*types.Participant) []*types.Participant {
	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].Name < parts[j].Name
	})

	return parts
}
