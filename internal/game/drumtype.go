package game

// DrumType is the coarse classification carried by charts that already
// know what a component is, so no text parsing is needed for them.
type DrumType int

const (
	TypeUnknown DrumType = iota
	TypeKick
	TypeSnare
	TypeRimshot
	TypeCrossStick
	TypeHiHatClosed
	TypeHiHatOpen
	TypeHiHatPedal
	TypeTomHigh
	TypeTomMid
	TypeTomLow
	TypeRide
	TypeRideBell
	TypeCrash
	TypeChina
	TypeSplash
	TypeCowbell
	TypePercussion
)

func (t DrumType) String() string {
	switch t {
	case TypeKick:
		return "Kick"
	case TypeSnare:
		return "Snare"
	case TypeRimshot:
		return "Rimshot"
	case TypeCrossStick:
		return "CrossStick"
	case TypeHiHatClosed:
		return "HiHatClosed"
	case TypeHiHatOpen:
		return "HiHatOpen"
	case TypeHiHatPedal:
		return "HiHatPedal"
	case TypeTomHigh:
		return "TomHigh"
	case TypeTomMid:
		return "TomMid"
	case TypeTomLow:
		return "TomLow"
	case TypeRide:
		return "Ride"
	case TypeRideBell:
		return "RideBell"
	case TypeCrash:
		return "Crash"
	case TypeChina:
		return "China"
	case TypeSplash:
		return "Splash"
	case TypeCowbell:
		return "Cowbell"
	case TypePercussion:
		return "Percussion"
	}
	return "Unknown"
}
