package lane

// Category is the closed set of semantic drum-kit component classes.
// Every component label maps to at least one of these; unparseable
// labels land on Unknown.
type Category int

const (
	Unknown Category = iota
	Kick
	Snare
	Rimshot
	CrossStick
	HiHatClosed
	HiHatOpen
	HiHatPedal
	TomHigh
	TomMid
	TomLow
	Ride
	Crash
	China
	Splash
	Cowbell
	Percussion

	categoryCount
)

func (c Category) String() string {
	switch c {
	case Kick:
		return "Kick"
	case Snare:
		return "Snare"
	case Rimshot:
		return "Rimshot"
	case CrossStick:
		return "CrossStick"
	case HiHatClosed:
		return "HiHatClosed"
	case HiHatOpen:
		return "HiHatOpen"
	case HiHatPedal:
		return "HiHatPedal"
	case TomHigh:
		return "TomHigh"
	case TomMid:
		return "TomMid"
	case TomLow:
		return "TomLow"
	case Ride:
		return "Ride"
	case Crash:
		return "Crash"
	case China:
		return "China"
	case Splash:
		return "Splash"
	case Cowbell:
		return "Cowbell"
	case Percussion:
		return "Percussion"
	}
	return "Unknown"
}

// Side is a tie-break hint used only when a category occupies more than
// one lane.
type Side int

const (
	SideCentre Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	}
	return "Centre"
}
