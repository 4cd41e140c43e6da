package playfield

import (
	"testing"
	"time"

	"github.com/meara/drumfall/internal/game"
	"github.com/meara/drumfall/internal/lane"
)

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

func note(timeMs, laneIdx int) *game.Note {
	return &game.Note{Time: ms(timeMs), Component: "Snare", Lane: laneIdx}
}

func makeField(notes ...*game.Note) *Playfield {
	layout := lane.DefaultFactory.ForPreset(lane.PresetSevenLane)
	p := New(layout)
	p.Load(&game.Beatmap{Notes: notes})
	return p
}

func TestLoadEmpty(t *testing.T) {
	layout := lane.DefaultFactory.ForPreset(lane.PresetSevenLane)
	for _, b := range []*game.Beatmap{nil, {}} {
		p := New(layout)
		p.Load(b)
		if p.State() != StateIdle {
			t.Fatal("expected idle state, got", p.State())
		}
		p.Tick(ms(1000))
		if _, ok := p.HandleInput(2, ms(1000)); ok {
			t.Fatal("expected no result on an empty session")
		}
		if len(p.Visible()) != 0 {
			t.Fatal("expected nothing visible")
		}
	}
}

var boundaryTests = map[time.Duration]game.Tier{
	0:                                      game.TierPerfect,
	ms(35):                                 game.TierPerfect,
	-ms(35):                                game.TierPerfect,
	ms(35) + time.Microsecond:              game.TierGreat,
	ms(80):                                 game.TierGreat,
	ms(130):                                game.TierGood,
	ms(180):                                game.TierMeh,
	ms(220):                                game.TierMiss,
}

func TestJudgementBoundaries(t *testing.T) {
	base := ms(10000)
	for offset, expected := range boundaryTests {
		p := makeField(&game.Note{Time: base, Component: "Snare", Lane: 2})
		res, ok := p.HandleInput(2, base+offset)
		if !ok {
			t.Log("offset", offset)
			t.Log("expected", expected, "got no result")
			t.Fail()
			continue
		}
		if res.Tier != expected || res.Offset != offset {
			t.Log("offset  ", offset)
			t.Log("out     ", res.Tier, res.Offset)
			t.Log("expected", expected)
			t.Fail()
		}
	}

	// Just past the outermost window: no judgement, no mutation.
	p := makeField(&game.Note{Time: base, Component: "Snare", Lane: 2})
	if _, ok := p.HandleInput(2, base+ms(221)); ok {
		t.Fatal("input outside the miss window should not judge")
	}
	if p.notes[0].Judged {
		t.Fatal("note mutated by a rejected input")
	}
}

func TestJudgementIdempotent(t *testing.T) {
	p := makeField(note(1000, 2))
	if _, ok := p.HandleInput(2, ms(1010)); !ok {
		t.Fatal("expected a judgement")
	}
	tier := p.notes[0].Tier
	if _, ok := p.HandleInput(2, ms(1000)); ok {
		t.Fatal("a judged note must not be judged again")
	}
	if p.notes[0].Tier != tier {
		t.Fatal("judgement changed after the fact")
	}
}

func TestClosestNoteWins(t *testing.T) {
	p := makeField(note(1000, 2), note(1100, 2))
	res, ok := p.HandleInput(2, ms(1040))
	if !ok || res.Note.Time != ms(1000) {
		t.Fatal("expected the 1000ms note, got", res.Note)
	}
	// The first note is spent; the same input time now reaches the next.
	res, ok = p.HandleInput(2, ms(1040))
	if !ok || res.Note.Time != ms(1100) {
		t.Fatal("expected the 1100ms note, got", res.Note)
	}
}

func TestInputWrongLane(t *testing.T) {
	p := makeField(note(1000, 2))
	if _, ok := p.HandleInput(4, ms(1000)); ok {
		t.Fatal("input on another lane judged a note")
	}
}

func TestMissPruning(t *testing.T) {
	judged := []Result{}
	p := makeField(note(1000, 2))
	p.OnJudgement = func(r Result) { judged = append(judged, r) }

	// Inside the past-visibility window nothing is forced yet.
	p.Tick(ms(1820))
	if len(judged) != 0 {
		t.Fatal("pruned too early")
	}

	p.Tick(ms(1821))
	if len(judged) != 1 || judged[0].Tier != game.TierMiss {
		t.Fatal("expected a forced miss, got", judged)
	}
	if judged[0].Offset != ms(821) {
		t.Fatal("miss offset", judged[0].Offset)
	}
	if p.firstActive != 1 {
		t.Fatal("cursor did not advance:", p.firstActive)
	}
	if len(p.Visible()) != 0 {
		t.Fatal("pruned note still visible")
	}
}

func TestEveryNoteJudgedExactlyOnce(t *testing.T) {
	notes := []*game.Note{}
	for i := 0; i < 11; i++ {
		notes = append(notes, note(i*100, 2))
	}
	counts := map[*game.Note]int{}
	p := makeField(notes...)
	p.OnJudgement = func(r Result) { counts[r.Note]++ }

	cursor := 0
	for now := ms(0); now <= ms(5000); now += ms(50) {
		p.Tick(now)
		if p.firstActive < cursor {
			t.Fatal("cursor moved backward during forward playback")
		}
		cursor = p.firstActive
	}

	if len(counts) != len(notes) {
		t.Fatal("judged", len(counts), "of", len(notes), "notes")
	}
	for n, c := range counts {
		if c != 1 {
			t.Fatal("note judged", c, "times:", n)
		}
		if n.Tier != game.TierMiss {
			t.Fatal("an uninput note should miss, got", n.Tier)
		}
	}
}

func TestPreviewSuppressesForcedMisses(t *testing.T) {
	judged := 0
	p := makeField(note(1000, 2))
	p.SetPreview(true)
	p.OnJudgement = func(Result) { judged++ }

	p.Tick(ms(10000))
	if judged != 0 {
		t.Fatal("preview mode forced a miss")
	}
	if p.firstActive != 1 {
		t.Fatal("preview should still advance the cursor")
	}
}

func TestSharedKickLine(t *testing.T) {
	kick := &game.Note{Time: ms(1000), Component: "Kick", Lane: 0, Kick: true}
	snare := note(1000, 2)

	p := makeField(kick, snare)
	p.SetKickShared(true)

	// Input on the kick line matches the kick note despite its stored
	// lane, and never the snare.
	res, ok := p.HandleInput(3, ms(1010))
	if !ok || res.Note != kick {
		t.Fatal("expected the kick note, got", res.Note)
	}
	if _, ok := p.HandleInput(3, ms(1010)); ok {
		t.Fatal("shared line matched a non-kick note")
	}

	// With a dedicated kick lane the stored lane is what counts.
	p = makeField(&game.Note{Time: ms(1000), Component: "Kick", Lane: 0, Kick: true})
	if _, ok := p.HandleInput(3, ms(1000)); ok {
		t.Fatal("dedicated mode matched across lanes")
	}
	if _, ok := p.HandleInput(0, ms(1000)); !ok {
		t.Fatal("dedicated mode missed the stored lane")
	}
}

func TestSeekKeepsPastJudgements(t *testing.T) {
	p := makeField(note(1000, 2), note(2000, 2))
	p.HandleInput(2, ms(1005))
	p.HandleInput(2, ms(2005))

	p.Tick(ms(5000))

	// Seek backward to a point after both notes: judgements survive.
	p.Seek(ms(2500))
	if !p.notes[0].Judged || !p.notes[1].Judged {
		t.Fatal("seek to a later point dropped past judgements")
	}
	if p.firstActive != 1 {
		t.Fatal("cursor after seek:", p.firstActive)
	}

	// Forward again past the same notes without re-input: no re-judge.
	rejudged := 0
	p.OnJudgement = func(Result) { rejudged++ }
	p.Seek(ms(4000))
	p.Tick(ms(4000))
	if rejudged != 0 {
		t.Fatal("seek re-judged settled notes")
	}
	if p.notes[0].Tier == game.TierMiss || p.notes[1].Tier == game.TierMiss {
		t.Fatal("settled notes were re-judged to miss")
	}
}

func TestSeekResetsFutureNotes(t *testing.T) {
	p := makeField(note(1000, 2))
	p.HandleInput(2, ms(1000))
	if !p.notes[0].Judged {
		t.Fatal("setup: note not judged")
	}

	p.Seek(ms(500))
	if p.notes[0].Judged {
		t.Fatal("note after the seek target kept its judgement")
	}
	if p.firstActive != 0 {
		t.Fatal("cursor after backward seek:", p.firstActive)
	}

	// The note is playable again.
	if _, ok := p.HandleInput(2, ms(1020)); !ok {
		t.Fatal("unjudged note not re-playable after seek")
	}
}

func TestRestart(t *testing.T) {
	p := makeField(note(1000, 2), note(2000, 2))
	p.HandleInput(2, ms(1000))
	p.Tick(ms(5000))

	p.Restart()
	if p.State() != StateLoaded {
		t.Fatal("state after restart:", p.State())
	}
	if p.firstActive != 0 {
		t.Fatal("cursor after restart:", p.firstActive)
	}
	for _, n := range p.notes {
		if n.Judged || n.Tier != game.TierNone {
			t.Fatal("restart kept a judgement")
		}
	}
}

func TestApproachDuration(t *testing.T) {
	layout := lane.DefaultFactory.ForPreset(lane.PresetSevenLane)
	p := New(layout)
	p.Load(&game.Beatmap{
		Notes: []*game.Note{note(0, 2)},
		TimingPoints: []game.TimingPoint{
			{Time: 0, BPM: 120, BeatsPerMeasure: 4},
			{Time: ms(4000), BPM: 150, BeatsPerMeasure: 3},
		},
	})

	// 120 BPM 4/4: 10 visible beats of 500ms.
	p.Tick(0)
	if p.Approach() != ms(5000) {
		t.Fatal("approach at 120bpm:", p.Approach())
	}

	// 150 BPM 3/4: 7.5 visible beats of 400ms.
	p.Tick(ms(4000))
	if p.Approach() != ms(3000) {
		t.Fatal("approach at 150bpm:", p.Approach())
	}

	// Backward jump re-searches the timing list.
	p.Tick(0)
	if p.Approach() != ms(5000) {
		t.Fatal("approach after backward jump:", p.Approach())
	}

	// Zoom scales inversely and clamps at 0.1.
	p.SetZoom(2)
	p.Tick(0)
	if p.Approach() != ms(2500) {
		t.Fatal("approach at zoom 2:", p.Approach())
	}
	p.SetZoom(0.01)
	p.Tick(0)
	if p.Approach() != ms(50000) {
		t.Fatal("approach at clamped zoom:", p.Approach())
	}
	p.SetZoom(1)

	if p.Approach() <= 0 {
		t.Fatal("approach must stay positive")
	}
}

func TestApproachDefaults(t *testing.T) {
	p := makeField(note(0, 2))
	p.Tick(0)
	// No timing points: 120 BPM 4/4 fallback.
	if p.Approach() != ms(5000) {
		t.Fatal("default approach:", p.Approach())
	}

	p = New(lane.DefaultFactory.ForPreset(lane.PresetSevenLane))
	p.Load(&game.Beatmap{
		Notes:        []*game.Note{note(0, 2)},
		TimingPoints: []game.TimingPoint{{Time: 0, BPM: -30, BeatsPerMeasure: 0}},
	})
	p.Tick(0)
	if p.Approach() != ms(5000) {
		t.Fatal("non-positive tempo should fall back, got", p.Approach())
	}
}

func TestProgress(t *testing.T) {
	p := makeField(note(1000, 2), note(7000, 2))

	p.Tick(0) // approach 5000ms, future window 5900ms
	visible := p.Visible()
	if len(visible) != 1 {
		t.Fatal("expected only the near note visible, got", len(visible))
	}
	if visible[0].Progress != 1-float64(ms(1000))/float64(ms(5000)) {
		t.Fatal("progress at 1000ms out:", visible[0].Progress)
	}

	p.Tick(ms(1000))
	if p.notes[0].Progress != 1 {
		t.Fatal("progress at the hit line:", p.notes[0].Progress)
	}
}

func TestLoadSortsNotes(t *testing.T) {
	p := makeField(note(3000, 2), note(1000, 2), note(2000, 2))
	for i := 1; i < len(p.notes); i++ {
		if p.notes[i].Time < p.notes[i-1].Time {
			t.Fatal("notes not time-sorted after load")
		}
	}
}

func TestStateTransitions(t *testing.T) {
	p := makeField(note(1000, 2))
	if p.State() != StateLoaded {
		t.Fatal("after load:", p.State())
	}
	p.Tick(0)
	if p.State() != StateRunning {
		t.Fatal("after tick:", p.State())
	}
	p.Seek(ms(500))
	if p.State() != StateLoaded {
		t.Fatal("after seek:", p.State())
	}
	p.Tick(ms(500))
	if p.State() != StateRunning {
		t.Fatal("after resumed tick:", p.State())
	}
}
