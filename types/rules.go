package types

import "math"

// Fixed per-heat staffing floors. Captain minimums come from the
// station count and instructor minimums scale with novice load, so
// neither appears here.
const (
	MinInstructorsPerHeat = 3
	MinTimingPerHeat      = 2
	MinGridPerHeat        = 2
	MinStartPerHeat       = 1
)

// RoleMinima maps each required role to its minimum staffing for one
// heat.
type RoleMinima map[Role]int

// Rules holds the numeric acceptance rules for one scheduling run:
// inter-heat balance tolerances and the inputs to per-heat role
// minima. Rules are derived once from the roster and configuration and
// never change during a run.
type Rules struct {
	// Stations is the number of worker stations; it is also the
	// captain minimum per heat.
	Stations int

	// NoviceDenominator is the novice-to-instructor ratio: one
	// instructor is required per NoviceDenominator novices in the
	// complementary heat.
	NoviceDenominator int

	// MeanHeatSize is the target participant count per heat.
	MeanHeatSize int

	// MaxHeatSizeDelta is the allowed deviation from MeanHeatSize.
	MaxHeatSizeDelta int

	// MeanNoviceCount is the target novice count per heat.
	MeanNoviceCount int

	// MaxNoviceDelta is the allowed deviation from MeanNoviceCount.
	MaxNoviceDelta int
}

// NewRules derives acceptance rules from a roster and the configured
// parity divisors. A smaller parity divisor yields a larger tolerance;
// means round half away from zero and tolerances round up, so a
// tolerance is never zero while participants remain.
func NewRules(r *Roster, stations, heatSizeParity, noviceSizeParity, noviceDenominator int) Rules {
	total := len(r.Participants)
	novices := r.Novices()
	heats := len(r.Heats)

	return Rules{
		Stations:          stations,
		NoviceDenominator: noviceDenominator,
		MeanHeatSize:      int(math.Round(float64(total) / float64(heats))),
		MaxHeatSizeDelta:  int(math.Ceil(float64(total) / float64(heatSizeParity))),
		MeanNoviceCount:   int(math.Round(float64(novices) / float64(heats))),
		MaxNoviceDelta:    int(math.Ceil(float64(novices) / float64(noviceSizeParity))),
	}
}

// Minima returns the per-role minimum staffing for a heat whose
// complementary heat contains the given number of novices.
//
// The instructor minimum is the greater of the fixed floor and the
// complementary novice count divided by NoviceDenominator, rounded
// half away from zero. (Historical variants of this rule used
// round-half-to-even; this implementation pins half-away-from-zero.)
func (ru Rules) Minima(complementaryNovices float64) RoleMinima {
	instructors := int(math.Round(complementaryNovices / float64(ru.NoviceDenominator)))
	if instructors < MinInstructorsPerHeat {
		instructors = MinInstructorsPerHeat
	}

	return RoleMinima{
		RoleInstructor: instructors,
		RoleTiming:     MinTimingPerHeat,
		RoleGrid:       MinGridPerHeat,
		RoleStart:      MinStartPerHeat,
		RoleCaptain:    ru.Stations,
	}
}

// HeatMinima returns the per-role minima for a specific heat, using
// its complement's actual novice count.
func (ru Rules) HeatMinima(h *Heat) RoleMinima {
	return ru.Minima(float64(h.Complement().Novices()))
}

// ValidSize reports whether the heat's size is within tolerance of the
// mean.
func (ru Rules) ValidSize(h *Heat) bool {
	delta := h.Size() - ru.MeanHeatSize
	if delta < 0 {
		delta = -delta
	}

	return delta <= ru.MaxHeatSizeDelta
}

// ValidNoviceCount reports whether the heat's novice count is within
// tolerance of the mean.
func (ru Rules) ValidNoviceCount(h *Heat) bool {
	delta := h.Novices() - ru.MeanNoviceCount
	if delta < 0 {
		delta = -delta
	}

	return delta <= ru.MaxNoviceDelta
}

// ValidRoleFulfillment reports whether the heat's assignments satisfy
// its role minima: exact counts for every role except instructor,
// which may exceed its minimum.
func (ru Rules) ValidRoleFulfillment(h *Heat) bool {
	minima := ru.HeatMinima(h)
	for role, minimum := range minima {
		assigned := len(h.Assigned(Assignment(role)))
		if role == RoleInstructor {
			if assigned < minimum {
				return false
			}
			continue
		}
		if assigned != minimum {
			return false
		}
	}

	return true
}
