package game

import (
	"time"
)

// TimingPoint is a tempo/time-signature change effective from Time onward.
type TimingPoint struct {
	Time            time.Duration
	BPM             float64
	BeatsPerMeasure int
}

func (t TimingPoint) BeatDuration() time.Duration {
	bpm := t.BPM
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	return time.Duration(float64(time.Minute) / bpm)
}

// DefaultBPM is used when a beatmap carries no usable timing points.
const DefaultBPM = 120.0
