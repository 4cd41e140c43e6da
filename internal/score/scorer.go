package score

import (
	"math"
	"time"

	"github.com/meara/drumfall/internal/game"
)

// NoteResult is one judged note of a session: when the note was due,
// what it earned, and how far off the input was.
type NoteResult struct {
	Time   time.Duration
	Tier   game.Tier
	Offset time.Duration
}

// Session is a saved playthrough of one chart.
type Session struct {
	Sum     string
	Rate    float64
	Results []NoteResult
}

type Scorer interface {
	Init() error
	Deinit()

	// Save persists the results of this playthrough
	Save(b *game.Beatmap, rate float64, results []NoteResult) error

	// Load fetches all saved sessions for the chart
	Load(b *game.Beatmap) []Session
}

// Summary aggregates a session the way the sidebar presents it.
type Summary struct {
	Counts     map[game.Tier]int
	Hits       int
	Mean       float64 // ms, signed
	Stdev      float64 // ms, sample deviation
	TotalError time.Duration
}

// Summarize computes per-tier counts and offset statistics. Misses
// count toward the tier tally but not toward the offset stats, since a
// forced miss has no meaningful input offset.
func Summarize(results []NoteResult) Summary {
	s := Summary{Counts: map[game.Tier]int{}}

	sum := 0.0
	for _, r := range results {
		s.Counts[r.Tier]++
		if r.Tier == game.TierNone || r.Tier == game.TierMiss {
			continue
		}
		s.Hits++
		ms := float64(r.Offset) / float64(time.Millisecond)
		sum += ms
		if r.Offset < 0 {
			s.TotalError -= r.Offset
		} else {
			s.TotalError += r.Offset
		}
	}
	if s.Hits == 0 {
		return s
	}
	s.Mean = sum / float64(s.Hits)

	if s.Hits > 1 {
		for _, r := range results {
			if r.Tier == game.TierNone || r.Tier == game.TierMiss {
				continue
			}
			xi := float64(r.Offset)/float64(time.Millisecond) - s.Mean
			s.Stdev += xi * xi
		}
		s.Stdev /= float64(s.Hits - 1)
		s.Stdev = math.Sqrt(s.Stdev)
	}
	return s
}
