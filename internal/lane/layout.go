package lane

import (
	"fmt"
	"sort"
)

// Layout is an immutable mapping from categories to lane indices for a
// fixed lane count. Construct one with NewLayout; never mutate it after.
type Layout struct {
	laneCount int
	lanes     [categoryCount][]int

	// Canonical lanes, resolved once at construction.
	KickLane  int
	SnareLane int
	HiHatLane int
	RideLane  int
}

// Canonical priority lists used to derive the named lanes at
// construction time.
var (
	snarePriority = []Category{Snare, Rimshot, CrossStick, TomHigh, Kick}
	hiHatPriority = []Category{HiHatClosed, HiHatOpen, HiHatPedal, Crash, Snare}
	ridePriority  = []Category{Ride, Crash, China, HiHatOpen}
)

// NewLayout normalizes the given category table for laneCount lanes.
// Indices are deduplicated, sorted, and filtered to [0, laneCount);
// preset tables may over-specify lanes for smaller layouts, so
// out-of-range entries are dropped rather than rejected.
func NewLayout(laneCount int, table map[Category][]int) (*Layout, error) {
	if laneCount <= 0 {
		return nil, fmt.Errorf("layout requires a positive lane count, got %v", laneCount)
	}

	l := &Layout{laneCount: laneCount}
	for c, indices := range table {
		if c < 0 || c >= categoryCount {
			continue
		}
		seen := make(map[int]bool, len(indices))
		lanes := make([]int, 0, len(indices))
		for _, i := range indices {
			if i < 0 || i >= laneCount || seen[i] {
				continue
			}
			seen[i] = true
			lanes = append(lanes, i)
		}
		sort.Ints(lanes)
		l.lanes[c] = lanes
	}

	l.KickLane = l.kickLane()
	l.SnareLane = l.ResolveLane(snarePriority, SideLeft, -1)
	l.HiHatLane = l.ResolveLane(hiHatPriority, SideLeft, -1)
	l.RideLane = l.ResolveLane(ridePriority, SideRight, -1)
	return l, nil
}

func (l *Layout) LaneCount() int {
	return l.laneCount
}

// Lanes returns the sorted lane set for a category. Callers must not
// mutate the returned slice.
func (l *Layout) Lanes(c Category) []int {
	if c < 0 || c >= categoryCount {
		return nil
	}
	return l.lanes[c]
}

// kickLane picks the mapped kick lane nearest the middle of the layout.
// Every authored layout maps kick, but a derived one could not; the
// centre lane stands in so the kick fallback chain stays total.
func (l *Layout) kickLane() int {
	set := l.lanes[Kick]
	if len(set) == 0 {
		return l.laneCount / 2
	}
	centre := float64(l.laneCount-1) / 2
	best := set[0]
	for _, lane := range set[1:] {
		if absf(float64(lane)-centre) < absf(float64(best)-centre) {
			best = lane
		}
	}
	return best
}

// ResolveLane resolves a category-priority list to a single lane index.
// A stored lane inside [0, laneCount) always wins, which lets a manual
// per-hit lane edit survive layout changes while it stays in range.
func (l *Layout) ResolveLane(priority []Category, side Side, stored int) int {
	if stored >= 0 && stored < l.laneCount {
		return stored
	}
	for _, c := range priority {
		if c < 0 || c >= categoryCount {
			continue
		}
		set := l.lanes[c]
		if len(set) == 0 {
			continue
		}
		if len(set) == 1 {
			return set[0]
		}
		return l.pickSide(set, side)
	}
	// Nothing in the list is mapped. Preset tables always map Unknown,
	// so only a hand-built table can reach the leftmost-lane fallback.
	return 0
}

// pickSide breaks a multi-lane tie relative to the kick lane. set is
// sorted ascending.
func (l *Layout) pickSide(set []int, side Side) int {
	switch side {
	case SideLeft:
		// Rightmost lane at or left of the kick.
		best := -1
		for _, lane := range set {
			if lane <= l.KickLane {
				best = lane
			}
		}
		if best >= 0 {
			return best
		}
	case SideRight:
		// Leftmost lane at or right of the kick.
		for _, lane := range set {
			if lane >= l.KickLane {
				return lane
			}
		}
	default:
		// Closest to the kick, ties broken by the ascending scan.
		best := set[0]
		bestDistance := absi(set[0] - l.KickLane)
		for _, lane := range set[1:] {
			if d := absi(lane - l.KickLane); d < bestDistance {
				best = lane
				bestDistance = d
			}
		}
		return best
	}
	// No candidate on the requested side.
	return set[0]
}

func absi(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
