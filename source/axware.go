package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/joshuavictorchen/autologic-sub000/types"
)

// Registration export column headers.
const (
	colFirstName = "First Name"
	colLastName  = "Last Name"
	colMemberID  = "Member #"
	colClass     = "Class"
	colNumber    = "Number"
	colCheckin   = "Checkin"
)

// attrColID is the member attributes sheet's key column.
const attrColID = "id"

// AXWare implements a participant source backed by a timing-software
// registration export (tab-separated) joined with a member attributes
// sheet (comma-separated).
//
// The registration export carries identity, class, car number, and
// check-in status. The attributes sheet maps member IDs to role
// qualifications: one column per role, where any non-empty cell marks
// the member qualified. Entrants without an attributes row carry no
// qualifications.
//
// Special assignments pin individual members to a fixed duty before
// any role selection happens; the map key is the member ID.
type AXWare struct {
	exportPath     string
	attributesPath string
	special        map[string]types.Assignment
}

var _ types.ParticipantSource = (*AXWare)(nil)

// NewAXWare creates a participant source reading the given files.
//
// Parameters:
//   - exportPath: Path to the tab-separated registration export
//   - attributesPath: Path to the member attributes CSV
//   - special: Member ID to pinned assignment, may be nil
//
// Returns:
//   - *AXWare: Initialized source (files are read on Participants)
//
// Example:
//
//	src := source.NewAXWare("event.tsv", "members.csv", map[string]types.Assignment{
//	    "12345": types.AssignmentSpecial,
//	})
//	checkedIn, noShows, err := src.Participants(ctx)
//	if err != nil { /* handle */ }
func NewAXWare(exportPath, attributesPath string, special map[string]types.Assignment) *AXWare {
	return &AXWare{
		exportPath:     exportPath,
		attributesPath: attributesPath,
		special:        special,
	}
}

// Participants reads both files and returns checked-in participants
// and no-shows.
//
// A row whose Checkin cell is not "yes" (case-insensitive) is a
// no-show; no-shows still parse fully so reports can name them.
//
// Parameters:
//   - ctx: Context for cancellation (checked between files)
//
// Returns:
//   - []*types.Participant: Checked-in participants, export order
//   - []*types.Participant: No-shows, export order
//   - error: File or format error
func (s *AXWare) Participants(ctx context.Context) ([]*types.Participant, []*types.Participant, error) {
	attributes, err := s.loadAttributes()
	if err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	return s.loadExport(attributes)
}

// loadAttributes reads the member attributes sheet into a map keyed by
// member ID.
func (s *AXWare) loadAttributes() (map[string]types.Qualifications, error) {
	rows, header, err := readDelimited(s.attributesPath, ',')
	if err != nil {
		return nil, fmt.Errorf("read attributes sheet: %w", err)
	}

	idCol, ok := header[attrColID]
	if !ok {
		return nil, fmt.Errorf("%w: attributes sheet missing %q column", types.ErrMalformedExport, attrColID)
	}

	roleCols := make(map[types.Role]int)
	for _, role := range types.Roles {
		if col, ok := header[string(role)]; ok {
			roleCols[role] = col
		}
	}

	attributes := make(map[string]types.Qualifications, len(rows))
	for _, row := range rows {
		id := strings.TrimSpace(row[idCol])
		if id == "" {
			continue
		}

		var quals types.Qualifications
		for role, col := range roleCols {
			if strings.TrimSpace(row[col]) == "" {
				continue
			}
			switch role {
			case types.RoleInstructor:
				quals.Instructor = true
			case types.RoleTiming:
				quals.Timing = true
			case types.RoleGrid:
				quals.Grid = true
			case types.RoleStart:
				quals.Start = true
			case types.RoleCaptain:
				quals.Captain = true
			}
		}
		attributes[id] = quals
	}

	return attributes, nil
}

// loadExport reads the registration export and builds participants,
// joining qualifications by member ID.
func (s *AXWare) loadExport(attributes map[string]types.Qualifications) ([]*types.Participant, []*types.Participant, error) {
	rows, header, err := readDelimited(s.exportPath, '\t')
	if err != nil {
		return nil, nil, fmt.Errorf("read registration export: %w", err)
	}

	for _, col := range []string{colFirstName, colLastName, colMemberID, colClass, colNumber, colCheckin} {
		if _, ok := header[col]; !ok {
			return nil, nil, fmt.Errorf("%w: registration export missing %q column", types.ErrMalformedExport, col)
		}
	}

	var checkedIn, noShows []*types.Participant
	for _, row := range rows {
		first := strings.TrimSpace(row[header[colFirstName]])
		last := strings.TrimSpace(row[header[colLastName]])
		memberID := strings.TrimSpace(row[header[colMemberID]])

		// Full name stands in for the ID when no member number exists.
		id := memberID
		if id == "" {
			id = first + " " + last
		}

		rawClass := strings.ToUpper(strings.TrimSpace(row[header[colClass]]))
		class, novice := splitClass(rawClass)

		p := &types.Participant{
			ID:       id,
			Name:     last + ", " + first,
			Class:    class,
			RawClass: rawClass,
			Number:   strings.TrimSpace(row[header[colNumber]]),
			Novice:   novice,
			Quals:    attributes[memberID],
		}
		if special, ok := s.special[memberID]; ok && special != types.AssignmentUnset {
			p.Special = special
			p.Assignment = special
		}

		if strings.EqualFold(strings.TrimSpace(row[header[colCheckin]]), "yes") {
			checkedIn = append(checkedIn, p)
		} else {
			noShows = append(noShows, p)
		}
	}

	return checkedIn, noShows, nil
}

// splitClass derives the category key and novice flag from an exported
// class label. "NOV" prefixed classes are novices competing in the
// remainder class; the senior ("SR...") and prepared ("P...") families
// each collapse to a single key so they share a heat.
func splitClass(rawClass string) (string, bool) {
	switch {
	case strings.HasPrefix(rawClass, "NOV"):
		return strings.TrimPrefix(rawClass, "NOV"), true
	case strings.HasPrefix(rawClass, "SR"):
		return "SR", false
	case strings.HasPrefix(rawClass, "P"):
		return "P", false
	default:
		return rawClass, false
	}
}

// readDelimited reads a delimited file with a header row, tolerating a
// UTF-8 byte order mark. Returns the data rows and a column index map.
func readDelimited(path string, delimiter rune) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: %s is empty", types.ErrMalformedExport, path)
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		header[strings.TrimSpace(name)] = i
	}

	return records[1:], header, nil
}
