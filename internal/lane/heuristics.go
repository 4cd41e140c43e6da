package lane

import (
	"strings"

	"github.com/meara/drumfall/internal/game"
)

// maxPriorities caps a category-priority list. No branch emits more
// than this; anything past the cap would never be consulted anyway.
const maxPriorities = 8

// priorityList is a fixed-capacity, duplicate-free category buffer.
type priorityList struct {
	cats [maxPriorities]Category
	n    int
}

func (p *priorityList) add(cats ...Category) {
	for _, c := range cats {
		if p.n == maxPriorities {
			return
		}
		dup := false
		for i := 0; i < p.n; i++ {
			if p.cats[i] == c {
				dup = true
				break
			}
		}
		if !dup {
			p.cats[p.n] = c
			p.n++
		}
	}
}

// finish appends the universal last-resort fallbacks and returns the
// assembled list.
func (p *priorityList) finish() []Category {
	p.add(Snare, Kick, Unknown)
	return p.cats[:p.n]
}

// Normalize collapses a component label for substring matching: trim,
// dashes and spaces to underscores, lowercase.
func Normalize(component string) string {
	s := strings.TrimSpace(component)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ToLower(s)
}

func containsAny(s string, tokens ...string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func hasLeftToken(s string) bool {
	return strings.Contains(s, "left") || strings.HasSuffix(s, "_l")
}

func hasRightToken(s string) bool {
	return strings.Contains(s, "right") || strings.HasSuffix(s, "_r")
}

// trailingDigit returns the last digit character in s, or -1. It is a
// last-resort disambiguator once named tokens have failed.
func trailingDigit(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] >= '0' && s[i] <= '9' {
			return int(s[i] - '0')
		}
	}
	return -1
}

// sideFromTokens picks a side from explicit left/right tokens when
// exactly one is present, then from the trailing digit (1 left, 2 and
// up right), then Centre.
func sideFromTokens(s string) Side {
	l, r := hasLeftToken(s), hasRightToken(s)
	if l != r {
		if l {
			return SideLeft
		}
		return SideRight
	}
	switch d := trailingDigit(s); {
	case d == 1:
		return SideLeft
	case d >= 2:
		return SideRight
	}
	return SideCentre
}

// Classify maps a free-text component label to a category-priority
// list and a side preference. The cascade is first-match-wins in a
// fixed order; every input, including garbage, produces a non-empty
// list anchored on Unknown.
func Classify(component string) ([]Category, Side) {
	s := Normalize(component)
	var p priorityList

	switch {
	case containsAny(s, "kick", "bd", "bass"):
		p.add(Kick, Snare, HiHatClosed)
		return p.finish(), SideCentre

	case containsAny(s, "snare", "sidestick", "stickshot", "rimshot", "cross"):
		switch {
		case strings.Contains(s, "rimshot"):
			p.add(Rimshot, Snare, CrossStick)
		case containsAny(s, "sidestick", "stickshot", "cross"):
			p.add(CrossStick, Snare, Rimshot)
		default:
			p.add(Snare, Rimshot, CrossStick)
		}
		return p.finish(), SideCentre

	case containsAny(s, "hihat", "hi_hat", "hat", "hh"):
		switch {
		case containsAny(s, "pedal", "foot"):
			p.add(HiHatPedal, HiHatClosed, HiHatOpen)
		case strings.Contains(s, "open"):
			p.add(HiHatOpen, HiHatClosed, HiHatPedal)
		default:
			p.add(HiHatClosed, HiHatOpen, HiHatPedal)
		}
		p.add(Crash, Ride)
		return p.finish(), SideLeft

	case containsAny(s, "tom", "rack", "floor"):
		return classifyTom(s)

	case strings.Contains(s, "ride") ||
		(strings.Contains(s, "bell") && !strings.Contains(s, "cowbell")):
		p.add(Ride, Crash, China, HiHatOpen)
		return p.finish(), SideRight

	case containsAny(s, "crash", "stack"):
		p.add(Crash, Splash, Ride, China, Percussion)
		return p.finish(), sideFromTokens(s)

	case strings.Contains(s, "china"):
		p.add(China, Crash, Ride, Splash)
		return p.finish(), SideRight

	case strings.Contains(s, "splash"):
		p.add(Splash, Crash, China, HiHatOpen)
		side := SideLeft
		if hasRightToken(s) {
			side = SideRight
		}
		return p.finish(), side

	case strings.Contains(s, "cowbell"):
		p.add(Cowbell, Percussion, Ride)
		side := SideCentre
		if hasRightToken(s) {
			side = SideRight
		}
		return p.finish(), side

	case containsAny(s, "perc", "clap", "block", "wood", "tamb", "shaker", "triangle", "clave"):
		p.add(Percussion, Cowbell)
		side := SideCentre
		if hasRightToken(s) {
			side = SideRight
		}
		return p.finish(), side
	}

	p.add(Unknown)
	return p.finish(), SideCentre
}

func classifyTom(s string) ([]Category, Side) {
	var p priorityList
	var first Category
	var side Side

	switch {
	case containsAny(s, "floor", "low", "flr"):
		first, side = TomLow, SideRight
	case containsAny(s, "high", "rack", "tom1"):
		first, side = TomHigh, SideLeft
	case containsAny(s, "mid", "tom2"):
		first, side = TomMid, SideCentre
	default:
		switch d := trailingDigit(s); {
		case d == 1:
			first, side = TomHigh, SideLeft
		case d >= 3:
			first, side = TomLow, SideRight
		default:
			first, side = TomMid, SideCentre
		}
	}

	switch first {
	case TomLow:
		p.add(TomLow, TomMid, TomHigh)
	case TomHigh:
		p.add(TomHigh, TomMid, TomLow)
	default:
		p.add(TomMid, TomHigh, TomLow)
	}
	p.add(Percussion)
	return p.finish(), side
}

// ClassifyType is the coarse-type twin of Classify for charts that
// already carry a typed classification. Lists mirror the text cascade.
func ClassifyType(t game.DrumType) ([]Category, Side) {
	var p priorityList
	side := SideCentre

	switch t {
	case game.TypeKick:
		p.add(Kick, Snare, HiHatClosed)
	case game.TypeSnare:
		p.add(Snare, Rimshot, CrossStick)
	case game.TypeRimshot:
		p.add(Rimshot, Snare, CrossStick)
	case game.TypeCrossStick:
		p.add(CrossStick, Snare, Rimshot)
	case game.TypeHiHatClosed:
		p.add(HiHatClosed, HiHatOpen, HiHatPedal, Crash, Ride)
		side = SideLeft
	case game.TypeHiHatOpen:
		p.add(HiHatOpen, HiHatClosed, HiHatPedal, Crash, Ride)
		side = SideLeft
	case game.TypeHiHatPedal:
		p.add(HiHatPedal, HiHatClosed, HiHatOpen, Crash, Ride)
		side = SideLeft
	case game.TypeTomHigh:
		p.add(TomHigh, TomMid, TomLow, Percussion)
		side = SideLeft
	case game.TypeTomMid:
		p.add(TomMid, TomHigh, TomLow, Percussion)
	case game.TypeTomLow:
		p.add(TomLow, TomMid, TomHigh, Percussion)
		side = SideRight
	case game.TypeRide, game.TypeRideBell:
		p.add(Ride, Crash, China, HiHatOpen)
		side = SideRight
	case game.TypeCrash:
		p.add(Crash, Splash, Ride, China, Percussion)
	case game.TypeChina:
		p.add(China, Crash, Ride, Splash)
		side = SideRight
	case game.TypeSplash:
		p.add(Splash, Crash, China, HiHatOpen)
		side = SideLeft
	case game.TypeCowbell:
		p.add(Cowbell, Percussion, Ride)
	case game.TypePercussion:
		p.add(Percussion, Cowbell)
	default:
		p.add(Unknown)
	}
	return p.finish(), side
}

// ResolveLane classifies a component label and resolves it against the
// layout. stored passes through as the sticky per-hit override.
func ResolveLane(layout *Layout, component string, stored int) int {
	priority, side := Classify(component)
	return layout.ResolveLane(priority, side, stored)
}

// ResolveLaneType is ResolveLane for coarse drum types.
func ResolveLaneType(layout *Layout, t game.DrumType, stored int) int {
	priority, side := ClassifyType(t)
	return layout.ResolveLane(priority, side, stored)
}

// ApplyToBeatmap resolves and writes back the lane for every note,
// passing each note's existing lane through as the sticky override.
// Re-run this whenever the active layout changes; lane indices are not
// portable across layouts.
func ApplyToBeatmap(b *game.Beatmap, layout *Layout) {
	if b.Empty() || nil == layout {
		return
	}
	for _, n := range b.Notes {
		priority, side := Classify(n.Component)
		n.Lane = layout.ResolveLane(priority, side, n.Lane)
		n.Kick = priority[0] == Kick
	}
}
