package stations

import "github.com/joshuavictorchen/autologic-sub000/types"

// Stats summarizes one station assignment pass.
type Stats struct {
	// CategorySplits is the number of times a category group had to be
	// split across a station boundary.
	CategorySplits int

	// CaptainSwaps is the number of swaps the refinement pass made.
	CaptainSwaps int
}

// Assign assigns a station number in 1..count to every captain and
// worker in the heat and clears the station of every other role.
//
// Captains are placed round-robin: the i-th captain in stable heat
// order goes to station (i mod count) + 1, so captains wrap around
// once every station has one. Workers are grouped by normalized
// category and packed with closest-fit selection; per-station worker
// counts differ by at most one. A count below one makes the whole pass
// a no-op.
//
// The pass is idempotent: re-running it on an unchanged role
// assignment produces identical station numbers.
//
// Parameters:
//   - heat: Role-assigned heat (participant stations mutated in place)
//   - count: Number of worker stations
//
// Returns:
//   - Stats: Split and swap counts for observability
func Assign(heat *types.Heat, count int) Stats {
	if count < 1 {
		return Stats{}
	}

	var captains, workers []*types.Participant
	for _, p := range heat.Participants() {
		switch p.Assignment {
		case types.AssignmentCaptain:
			captains = append(captains, p)
		case types.AssignmentWorker:
			workers = append(workers, p)
		default:
			// Instructors, timing, grid, start, and specials hold no
			// station.
			p.Station = 0
		}
	}

	for i, captain := range captains {
		captain.Station = i%count + 1
	}

	stats := packWorkers(workers, count)
	stats.CaptainSwaps = refineCaptains(captains, workers, count)

	return stats
}

// group is a set of workers sharing a normalized category, kept in
// first-seen order so closest-fit ties resolve deterministically.
type group struct {
	key     string
	members []*types.Participant
}

// packWorkers distributes workers across stations with capacities that
// differ by at most one, keeping normalized categories together where
// the closest-fit rule allows.
func packWorkers(workers []*types.Participant, count int) Stats {
	var stats Stats
	if len(workers) == 0 {
		return stats
	}

	base := len(workers) / count
	remainder := len(workers) % count

	var groups []*group
	byKey := make(map[string]*group)
	for _, w := range workers {
		key := Normalize(w.Class)
		g, ok := byKey[key]
		if !ok {
			g = &group{key: key}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, w)
	}

	for station := 1; station <= count; station++ {
		capacity := base
		if station <= remainder {
			capacity++
		}

		assigned := 0
		for assigned < capacity && len(groups) > 0 {
			remaining := capacity - assigned
			best := closestFit(groups, remaining)
			g := groups[best]

			for assigned < capacity && len(g.members) > 0 {
				g.members[0].Station = station
				g.members = g.members[1:]
				assigned++
			}

			if len(g.members) == 0 {
				groups = append(groups[:best], groups[best+1:]...)
			} else {
				// Station filled mid-group; the rest spills to later
				// stations.
				stats.CategorySplits++
			}
		}
	}

	return stats
}

// closestFit returns the index of the group whose size is closest to
// the remaining capacity. Ties go to the smaller group, then to the
// earlier (first-seen) group.
func closestFit(groups []*group, remaining int) int {
	best := 0
	for i := 1; i < len(groups); i++ {
		di, db := distance(len(groups[i].members), remaining), distance(len(groups[best].members), remaining)
		if di < db || (di == db && len(groups[i].members) < len(groups[best].members)) {
			best = i
		}
	}

	return best
}

func distance(size, remaining int) int {
	if size > remaining {
		return size - remaining
	}

	return remaining - size
}

// refineCaptains performs a single-pass local search: each captain
// with no class mates at its station may swap once with another
// captain who also has none at theirs, choosing the target that gains
// the most class mates. The pass is not iterated to a fixed point; it
// is a heuristic, not a global optimum.
func refineCaptains(captains, workers []*types.Participant, count int) int {
	if len(captains) < 2 {
		return 0
	}

	captainByStation := make(map[int]*types.Participant)
	for _, c := range captains {
		captainByStation[c.Station] = c
	}

	classesByStation := make(map[int][]string)
	for _, w := range workers {
		classesByStation[w.Station] = append(classesByStation[w.Station], Normalize(w.Class))
	}

	classMates := func(captain *types.Participant, station int) int {
		key := Normalize(captain.Class)
		n := 0
		for _, class := range classesByStation[station] {
			if class == key {
				n++
			}
		}

		return n
	}

	swaps := 0
	for _, captain := range captains {
		if classMates(captain, captain.Station) > 0 {
			continue
		}

		bestStation := 0
		bestCount := 0
		for target := 1; target <= count; target++ {
			if target == captain.Station {
				continue
			}
			other, ok := captainByStation[target]
			if !ok {
				continue
			}
			// A target is only eligible if its own captain is also
			// isolated there; otherwise the swap would strand them.
			if classMates(other, target) > 0 {
				continue
			}
			if gained := classMates(captain, target); gained > bestCount {
				bestCount = gained
				bestStation = target
			}
		}

		if bestStation != 0 && bestCount > 0 {
			other := captainByStation[bestStation]
			captain.Station, other.Station = other.Station, captain.Station
			captainByStation[captain.Station] = captain
			captainByStation[other.Station] = other
			swaps++
		}
	}

	return swaps
}
