package game

import (
	"time"
)

type Tier int

const (
	TierNone Tier = iota
	TierPerfect
	TierGreat
	TierGood
	TierMeh
	TierMiss
)

func (t Tier) String() string {
	switch t {
	case TierPerfect:
		return "Perfect"
	case TierGreat:
		return "Great"
	case TierGood:
		return "Good"
	case TierMeh:
		return "Meh"
	case TierMiss:
		return "Miss"
	}
	return "None"
}

type Judgement struct {
	Tier   Tier
	Window time.Duration // Largest absolute offset that still earns this tier
	Name   string
}

// Judgements is ordered by ascending window. The windows do not overlap;
// an offset lands in the first tier whose window contains it.
var Judgements = []Judgement{
	{TierPerfect, 35 * time.Millisecond, "Perfect"},
	{TierGreat, 80 * time.Millisecond, "Great"},
	{TierGood, 130 * time.Millisecond, "Good"},
	{TierMeh, 180 * time.Millisecond, "Meh"},
	{TierMiss, 220 * time.Millisecond, "Miss"},
}

// MissWindow is the outermost judgement boundary. Inputs further from a
// note than this are ignored entirely.
const MissWindow = 220 * time.Millisecond

// Judge maps a signed timing offset to a tier, or TierNone when the
// offset falls outside every window.
func Judge(offset time.Duration) Tier {
	if offset < 0 {
		offset = -offset
	}
	for _, j := range Judgements {
		if offset <= j.Window {
			return j.Tier
		}
	}
	return TierNone
}
