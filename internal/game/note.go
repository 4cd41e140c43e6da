package game

import (
	"time"
)

// LaneUnset marks a note with no stored lane. Lane 0 is a valid lane,
// so the sentinel has to live below the valid range.
const LaneUnset = -1

type Note struct {
	Time      time.Duration // The time the note should be hit
	Component string        // Raw kit component label from the chart
	Velocity  float64       // 0.0 - 1.0
	Lane      int           // Resolved lane, or LaneUnset
	Duration  time.Duration // Sustain length, 0 for taps

	// This is playback state
	Kick     bool          // Primary classification is kick (shared-line matching)
	Judged   bool          // Set exactly once per session
	Tier     Tier          // Judgement tier, TierNone until judged
	Offset   time.Duration // hit time - note time, set when judged
	Progress float64       // 0 at the approach edge, 1 at the hit bar
}

// Accent reports whether the note was authored as an accented hit.
func (n *Note) Accent() bool {
	return n.Velocity >= 0.85
}
