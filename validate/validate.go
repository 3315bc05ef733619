package validate

import (
	"github.com/joshuavictorchen/autologic-sub000/types"
)

// RoleCheck reports fulfillment of one role in one heat.
type RoleCheck struct {
	// Assigned is the number of participants holding the role.
	Assigned int

	// Minimum is the required staffing for the role.
	Minimum int

	// OK is true when the count satisfies the rule: exact for every
	// role but instructor, at-least for instructors.
	OK bool
}

// HeatReport is the validation result for one heat.
type HeatReport struct {
	// Heat is the heat number.
	Heat int

	// Size and Novices are the heat's participant and novice counts.
	Size    int
	Novices int

	// SizeDelta and NoviceDelta are the absolute deviations from the
	// configured means.
	SizeDelta   int
	NoviceDelta int

	// SizeOK and NovicesOK report whether the deltas are within
	// tolerance.
	SizeOK    bool
	NovicesOK bool

	// Roles holds per-role fulfillment checks.
	Roles map[types.Role]RoleCheck
}

// Valid reports whether every check in the heat passed.
func (hr HeatReport) Valid() bool {
	if !hr.SizeOK || !hr.NovicesOK {
		return false
	}
	for _, rc := range hr.Roles {
		if !rc.OK {
			return false
		}
	}

	return true
}

// Report is the full validation result for a schedule.
type Report struct {
	// Heats holds one report per heat, in heat order.
	Heats []HeatReport

	// TotalParticipants is the roster size; SumHeatSizes must equal it
	// on any accepted schedule (no loss or duplication).
	TotalParticipants int
	SumHeatSizes      int

	// NoviceWarnings lists novices holding a role other than worker or
	// special. Allowed, but worth a coordinator's glance.
	NoviceWarnings []*types.Participant
}

// Valid reports whether the schedule satisfies every invariant.
// Novice warnings do not fail validation.
func (r Report) Valid() bool {
	if r.SumHeatSizes != r.TotalParticipants {
		return false
	}
	for _, hr := range r.Heats {
		if !hr.Valid() {
			return false
		}
	}

	return true
}

// Shortfalls returns the per-heat, per-role unmet minima in the
// report, for diagnostics.
func (r Report) Shortfalls() []types.RoleShortfall {
	var shortfalls []types.RoleShortfall
	for _, hr := range r.Heats {
		for _, role := range types.Roles {
			rc := hr.Roles[role]
			if rc.Assigned < rc.Minimum {
				shortfalls = append(shortfalls, types.RoleShortfall{
					Heat:     hr.Heat,
					Role:     role,
					Required: rc.Minimum,
					Assigned: rc.Assigned,
				})
			}
		}
	}

	return shortfalls
}

// Event validates the roster's current schedule against the given
// rules, recomputing every balance and role-fulfillment check from
// final state.
//
// Parameters:
//   - roster: Scheduled roster
//   - rules: Acceptance rules the schedule was produced under
//
// Returns:
//   - Report: Structured per-heat results
func Event(roster *types.Roster, rules types.Rules) Report {
	report := Report{TotalParticipants: len(roster.Participants)}

	for _, h := range roster.Heats {
		hr := HeatReport{
			Heat:    h.Number,
			Size:    h.Size(),
			Novices: h.Novices(),
			Roles:   make(map[types.Role]RoleCheck, len(types.Roles)),
		}
		hr.SizeDelta = abs(hr.Size - rules.MeanHeatSize)
		hr.NoviceDelta = abs(hr.Novices - rules.MeanNoviceCount)
		hr.SizeOK = hr.SizeDelta <= rules.MaxHeatSizeDelta
		hr.NovicesOK = hr.NoviceDelta <= rules.MaxNoviceDelta

		minima := rules.HeatMinima(h)
		for role, minimum := range minima {
			assigned := len(h.Assigned(types.Assignment(role)))
			ok := assigned == minimum
			if role == types.RoleInstructor {
				ok = assigned >= minimum
			}
			hr.Roles[role] = RoleCheck{Assigned: assigned, Minimum: minimum, OK: ok}
		}

		report.SumHeatSizes += hr.Size
		report.Heats = append(report.Heats, hr)
	}

	for _, p := range roster.Participants {
		if p.Novice && p.Assignment != types.AssignmentWorker && p.Assignment != types.AssignmentSpecial {
			report.NoviceWarnings = append(report.NoviceWarnings, p)
		}
	}

	return report
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
