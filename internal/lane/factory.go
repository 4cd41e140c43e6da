package lane

import (
	"log"
	"sort"
	"strings"
	"sync"
)

// Factory builds and caches Layout instances. Layouts are effectively
// immutable singletons keyed by preset identity, so concurrent callers
// asking for the same preset observe a single constructed instance.
type Factory struct {
	mu      sync.Mutex
	presets map[Preset]*Layout
	derived map[string]*Layout
}

// DefaultFactory is the process-wide layout cache.
var DefaultFactory = NewFactory()

func NewFactory() *Factory {
	return &Factory{
		presets: map[Preset]*Layout{},
		derived: map[string]*Layout{},
	}
}

// ForPreset returns the cached layout for a named preset, constructing
// it on first use.
func (f *Factory) ForPreset(p Preset) *Layout {
	f.mu.Lock()
	defer f.mu.Unlock()

	if l, ok := f.presets[p]; ok {
		return l
	}

	table, ok := presetTables[p]
	if !ok {
		p = PresetSevenLane
		if l, ok := f.presets[p]; ok {
			return l
		}
		table = presetTables[p]
	}
	l, err := NewLayout(p.LaneCount(), table)
	if nil != err {
		// Preset tables are authored in this file; a bad one is a
		// programming error, not a play-time condition.
		log.Fatalln("invalid preset table", p, err)
	}
	f.presets[p] = l
	return l
}

// kitOrder is the canonical left-to-right arrangement used to derive a
// layout from an arbitrary component set.
var kitOrder = []Category{
	HiHatPedal, HiHatOpen, HiHatClosed, Crash,
	Rimshot, CrossStick, Snare, Kick,
	TomHigh, TomMid, TomLow,
	Cowbell, Percussion, Splash, China, Ride,
	Unknown,
}

// ForComponents derives a layout for the distinct component labels of a
// chart: categories present in the set are placed left to right in
// canonical kit order, clamped to the 4..9 lane range. The result is
// cached by the sorted distinct label set.
func (f *Factory) ForComponents(components []string) *Layout {
	present := map[Category]bool{}
	distinct := map[string]bool{}
	for _, c := range components {
		n := Normalize(c)
		if n == "" || distinct[n] {
			continue
		}
		distinct[n] = true
		priority, _ := Classify(c)
		present[priority[0]] = true
	}

	names := make([]string, 0, len(distinct))
	for n := range distinct {
		names = append(names, n)
	}
	sort.Strings(names)
	key := strings.Join(names, "|")

	f.mu.Lock()
	defer f.mu.Unlock()

	if l, ok := f.derived[key]; ok {
		return l
	}

	ordered := make([]Category, 0, len(present))
	for _, c := range kitOrder {
		if present[c] {
			ordered = append(ordered, c)
		}
	}

	laneCount := len(ordered)
	if laneCount < 4 {
		laneCount = 4
	} else if laneCount > 9 {
		laneCount = 9
	}

	table := map[Category][]int{}
	for i, c := range ordered {
		lane := i
		if lane > laneCount-1 {
			lane = laneCount - 1
		}
		table[c] = []int{lane}
	}

	l, err := NewLayout(laneCount, table)
	if nil != err {
		log.Fatalln("invalid derived layout", err)
	}
	f.derived[key] = l
	return l
}
