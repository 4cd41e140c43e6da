package playfield

import (
	"sort"
	"time"

	"github.com/meara/drumfall/internal/game"
	"github.com/meara/drumfall/internal/lane"
)

// State is the per-session lifecycle of the playfield.
type State int

const (
	StateIdle State = iota // No beatmap
	StateLoaded            // Notes ingested and sorted, cursor at 0
	StateRunning           // Tick loop active, judging
	StateSeeking           // Cursor and judged state being invalidated
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "Loaded"
	case StateRunning:
		return "Running"
	case StateSeeking:
		return "Seeking"
	}
	return "Idle"
}

const (
	// pastVisibility keeps judged notes around briefly after they
	// cross the hit line; beyond it an unjudged note is a forced miss.
	pastVisibility = game.MissWindow + 600*time.Millisecond

	// futurePad extends the approach window so notes exist slightly
	// before they become visible.
	futurePad = 900 * time.Millisecond

	// A 4/4 piece always previews this many beats.
	targetVisibleBeats = 10.0

	minZoom = 0.1
)

// Result is one judgement outcome. A zero Result with ok == false from
// HandleInput means no eligible note existed for the input.
type Result struct {
	Note   *game.Note
	Tier   game.Tier
	Offset time.Duration
}

// Playfield advances a time-sorted note window against an externally
// supplied transport clock and resolves inputs to judgements. All state
// is owned by the tick/input callbacks of a single goroutine; there is
// no locking here.
type Playfield struct {
	// OnJudgement fires for every judgement, including forced misses
	// from pruning. Optional.
	OnJudgement func(Result)

	layout *lane.Layout
	notes  []*game.Note
	timing []game.TimingPoint

	state       State
	firstActive int
	lastActive  int
	timingIdx   int
	approach    time.Duration

	zoom       float64
	kickShared bool
	preview    bool
}

func New(layout *lane.Layout) *Playfield {
	return &Playfield{
		layout:    layout,
		state:     StateIdle,
		timingIdx: -1,
		zoom:      1.0,
	}
}

// Load ingests a beatmap. Notes may arrive unsorted; time order is
// established here, before any windowed processing. A nil or empty
// beatmap leaves the playfield idle with nothing to schedule.
func (p *Playfield) Load(b *game.Beatmap) {
	p.notes = nil
	p.timing = nil
	p.firstActive = 0
	p.lastActive = 0
	p.timingIdx = -1
	p.state = StateIdle

	if b.Empty() {
		return
	}

	p.notes = make([]*game.Note, len(b.Notes))
	copy(p.notes, b.Notes)
	sort.SliceStable(p.notes, func(i, j int) bool {
		return p.notes[i].Time < p.notes[j].Time
	})
	for _, n := range p.notes {
		n.Judged = false
		n.Tier = game.TierNone
		n.Offset = 0
		n.Progress = 0
	}

	p.timing = make([]game.TimingPoint, len(b.TimingPoints))
	copy(p.timing, b.TimingPoints)
	sort.SliceStable(p.timing, func(i, j int) bool {
		return p.timing[i].Time < p.timing[j].Time
	})

	p.state = StateLoaded
}

func (p *Playfield) State() State {
	return p.state
}

// Approach is the current approach duration, valid after a tick.
func (p *Playfield) Approach() time.Duration {
	return p.approach
}

// Visible returns the notes inside the active window as of the last
// tick, oldest first.
func (p *Playfield) Visible() []*game.Note {
	if p.lastActive < p.firstActive {
		return nil
	}
	return p.notes[p.firstActive:p.lastActive]
}

func (p *Playfield) SetLayout(l *lane.Layout) {
	if nil != l {
		p.layout = l
	}
}

func (p *Playfield) SetZoom(zoom float64) {
	p.zoom = zoom
}

// SetKickShared switches kick matching between a dedicated lane and the
// shared global timing line.
func (p *Playfield) SetKickShared(shared bool) {
	p.kickShared = shared
}

// SetPreview suppresses forced misses, for scrubbing through a chart
// without scoring it.
func (p *Playfield) SetPreview(preview bool) {
	p.preview = preview
}

// Tick advances the playfield to the given transport time. It is
// driven once per frame by the host loop; all work is synchronous and
// bounded by the visible window.
func (p *Playfield) Tick(now time.Duration) {
	if p.state == StateIdle {
		return
	}
	p.state = StateRunning
	p.updateApproachDuration(now)
	p.updateNotes(now)
}

// updateApproachDuration tracks the active tempo segment and derives
// the approach window from it. Forward motion is an amortized O(1)
// advance; a backward jump falls back to a re-search from the start.
func (p *Playfield) updateApproachDuration(now time.Duration) {
	for p.timingIdx+1 < len(p.timing) && p.timing[p.timingIdx+1].Time <= now {
		p.timingIdx++
	}
	if p.timingIdx >= 0 && p.timing[p.timingIdx].Time > now {
		p.timingIdx = -1
		for i := range p.timing {
			if p.timing[i].Time > now {
				break
			}
			p.timingIdx = i
		}
	}

	bpm := game.DefaultBPM
	beatsPerMeasure := 4
	if p.timingIdx >= 0 {
		tp := p.timing[p.timingIdx]
		if tp.BPM > 0 {
			bpm = tp.BPM
		}
		if tp.BeatsPerMeasure > 0 {
			beatsPerMeasure = tp.BeatsPerMeasure
		}
	}

	zoom := p.zoom
	if zoom < minZoom {
		zoom = minZoom
	}

	beatDuration := float64(time.Minute) / bpm
	visibleBeats := targetVisibleBeats * float64(beatsPerMeasure) / 4.0
	p.approach = time.Duration(visibleBeats * beatDuration / zoom)
}

// updateNotes prunes the past edge of the window and refreshes the
// progress of everything inside it. The cursor only moves forward;
// seeks are the one place it is rebuilt.
func (p *Playfield) updateNotes(now time.Duration) {
	for p.firstActive < len(p.notes) {
		n := p.notes[p.firstActive]
		if n.Time >= now-pastVisibility {
			break
		}
		if !n.Judged && !p.preview {
			// Every note receives exactly one judgement per session;
			// a note the player never hit becomes a miss here rather
			// than being silently dropped.
			p.judge(n, now-n.Time, game.TierMiss)
		}
		p.firstActive++
	}

	future := p.approach + futurePad
	last := p.firstActive
	for i := p.firstActive; i < len(p.notes); i++ {
		n := p.notes[i]
		until := n.Time - now
		if until > future {
			// Time-sorted, so nothing further is visible either.
			break
		}
		n.Progress = 1 - float64(until)/float64(p.approach)
		last = i + 1
	}
	p.lastActive = last
}

func (p *Playfield) judge(n *game.Note, offset time.Duration, tier game.Tier) {
	n.Judged = true
	n.Tier = tier
	n.Offset = offset
	if nil != p.OnJudgement {
		p.OnJudgement(Result{Note: n, Tier: tier, Offset: offset})
	}
}

// HandleInput resolves a player input on a lane to a judgement. The
// closest-in-time unjudged note on that lane within the miss window is
// judged; with the shared kick line enabled, input on the kick lane
// matches any unjudged kick note regardless of its stored lane. Returns
// ok == false when no eligible note exists; nothing is mutated then.
func (p *Playfield) HandleInput(laneIdx int, now time.Duration) (Result, bool) {
	if p.state == StateIdle || len(p.notes) == 0 {
		return Result{}, false
	}

	sharedKick := p.kickShared && nil != p.layout && laneIdx == p.layout.KickLane

	var closest *game.Note
	var offset time.Duration
	best := time.Duration(1<<63 - 1)

	for i := p.firstActive; i < len(p.notes); i++ {
		n := p.notes[i]
		if n.Time-now > game.MissWindow {
			// Sorted order guarantees nothing further qualifies.
			break
		}
		if n.Judged {
			continue
		}
		if sharedKick {
			if !n.Kick {
				continue
			}
		} else if n.Lane != laneIdx {
			continue
		}
		d := now - n.Time
		a := d
		if a < 0 {
			a = -a
		}
		if a < best {
			best = a
			offset = d
			closest = n
		} else if nil != closest {
			// Already past the closest; distances only grow from here.
			break
		}
	}

	if nil == closest || best > game.MissWindow {
		return Result{}, false
	}

	tier := game.Judge(offset)
	if tier == game.TierNone {
		return Result{}, false
	}
	p.judge(closest, offset, tier)
	return Result{Note: closest, Tier: tier, Offset: offset}, true
}

// Seek jumps the session to an arbitrary time. Notes after the target
// are un-judged so they can be played again; notes at or before it keep
// whatever judgement they already had, so replaying from a point does
// not re-score the past.
func (p *Playfield) Seek(t time.Duration) {
	if p.state == StateIdle {
		return
	}
	p.state = StateSeeking

	p.firstActive = 0
	for p.firstActive < len(p.notes) && p.notes[p.firstActive].Time < t-pastVisibility {
		p.firstActive++
	}
	p.lastActive = p.firstActive

	for _, n := range p.notes {
		if n.Time > t {
			n.Judged = false
			n.Tier = game.TierNone
			n.Offset = 0
		}
	}

	p.timingIdx = -1
	p.state = StateLoaded
}

// Restart resets every note and the cursor unconditionally.
func (p *Playfield) Restart() {
	if p.state == StateIdle {
		return
	}
	for _, n := range p.notes {
		n.Judged = false
		n.Tier = game.TierNone
		n.Offset = 0
		n.Progress = 0
	}
	p.firstActive = 0
	p.lastActive = 0
	p.timingIdx = -1
	p.state = StateLoaded
}
