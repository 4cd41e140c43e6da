package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory     = kingpin.Arg("directory", "Song/chart directory").Required().ExistingDir()
	Rate          = kingpin.Flag("rate", "Playback speed").Default("1.0").Short('r').Float64()
	Offset        = kingpin.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
	Delay         = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	Zoom          = kingpin.Flag("zoom", "Highway zoom, higher shows fewer beats").Default("1.0").Short('z').Float64()
	Lanes         = kingpin.Flag("lanes", "Lane preset (4-9)").Default("7").Short('n').Uint()
	KickLine      = kingpin.Flag("kick-line", "Judge kick hits on the shared timing line").Default("true").Bool()
	Preview       = kingpin.Flag("preview", "Scrub through the chart without scoring").Bool()
	ColumnSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Uint()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("8ms").Short('p').Duration()
	BarRow        = kingpin.Flag("bar-row", "Console rows between hit bar and bottom").Default("4").Uint()

	// The blank key is the kick in every binding; it sits on the
	// preset's kick lane.
	keys4 = kingpin.Flag("keys-4", "Keys for 4 lanes").Default("df k").String()
	keys5 = kingpin.Flag("keys-5", "Keys for 5 lanes").Default("df jk").String()
	keys6 = kingpin.Flag("keys-6", "Keys for 6 lanes").Default("df hjk").String()
	keys7 = kingpin.Flag("keys-7", "Keys for 7 lanes").Default("sdf jkl").String()
	keys8 = kingpin.Flag("keys-8", "Keys for 8 lanes").Default("sdf hjkl").String()
	keys9 = kingpin.Flag("keys-9", "Keys for 9 lanes").Default("asdf jkl;").String()
)

func Keys(laneCount int) []rune {
	switch laneCount {
	case 4:
		return []rune(*keys4)
	case 5:
		return []rune(*keys5)
	case 6:
		return []rune(*keys6)
	case 8:
		return []rune(*keys8)
	case 9:
		return []rune(*keys9)
	}
	return []rune(*keys7)
}

// KeyLane maps a pressed rune to its lane index, or -1.
func KeyLane(r rune, laneCount int) int {
	for i, c := range Keys(laneCount) {
		if r == c {
			return i
		}
	}
	return -1
}

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}
