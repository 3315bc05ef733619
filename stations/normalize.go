package stations

import "strings"

// Normalize collapses a category label to its class family for station
// grouping.
//
// Novice classes share stations with their base class, and the senior
// and prepared families each collapse to a single shared key:
//
//	Normalize("NOVCS") == "CS"
//	Normalize("SR1") == Normalize("SR2") == "SR"
//	Normalize("P1") == "P"
//
// Parameters:
//   - class: Raw or pre-grouped category label
//
// Returns:
//   - string: Normalized class-family key
func Normalize(class string) string {
	upper := strings.ToUpper(class)
	if rest, ok := strings.CutPrefix(upper, "NOV"); ok {
		return rest
	}
	if strings.HasPrefix(upper, "SR") {
		return "SR"
	}
	if strings.HasPrefix(upper, "P") {
		return "P"
	}

	return class
}
