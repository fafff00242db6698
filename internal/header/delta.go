package header

import (
	"fmt"

	"playtally/internal/classify"
)

// UnavailableLiteral is rendered when no prior count exists for a category.
const UnavailableLiteral = "N/A"

// DeltaValue is a signed count difference or an explicit unavailable marker.
type DeltaValue struct {
	Known bool
	N     int
}

// Delta maps categories to their change since the previous snapshot.
type Delta map[classify.Category]DeltaValue

// ComputeDelta diffs current counts against the previous snapshot counts.
// A nil previous map (no snapshot, or force mode) marks every category
// unavailable; so does a category the old snapshot never recorded.
func ComputeDelta(current classify.Counts, previous classify.Counts) Delta {
	delta := Delta{}
	for cat := range current {
		if previous == nil {
			delta[cat] = DeltaValue{}
			continue
		}
		prev, ok := previous[cat]
		if !ok {
			delta[cat] = DeltaValue{}
			continue
		}
		delta[cat] = DeltaValue{Known: true, N: current[cat] - prev}
	}
	return delta
}

// Format renders a delta value: "+2", "-1", "0", or "N/A".
func (v DeltaValue) Format() string {
	if !v.Known {
		return UnavailableLiteral
	}
	if v.N > 0 {
		return fmt.Sprintf("+%d", v.N)
	}
	return fmt.Sprintf("%d", v.N)
}
