package parser

import (
	"testing"
	"time"

	"github.com/meara/drumfall/internal/game"
)

const chart = `#TITLE:Test Groove;
#ARTIST:Someone;
#AUDIO:song.ogg;
#OFFSET:0;
#BPMS:0=120@4/4,4000=150@3/4;
#NOTES:
0,Kick,0.9
500,Snare
1000,Crash_L,1.5
1500,Cowbell,0.6,5
2000,HiHatOpen,0.5,,750
not a note line
3000
;
`

func TestParseData(t *testing.T) {
	p := DefaultParser{}
	b, err := p.ParseData([]byte(chart))
	if nil != err {
		t.Fatal(err)
	}

	if b.Title != "Test Groove" || b.Artist != "Someone" || b.Audio != "song.ogg" {
		t.Fatal("metadata:", b.Title, b.Artist, b.Audio)
	}

	if len(b.TimingPoints) != 2 {
		t.Fatal("timing points:", b.TimingPoints)
	}
	tp := b.TimingPoints[1]
	if tp.Time != 4*time.Second || tp.BPM != 150 || tp.BeatsPerMeasure != 3 {
		t.Fatal("second timing point:", tp)
	}

	// Two malformed lines are skipped, five notes survive.
	if len(b.Notes) != 5 {
		t.Fatal("note count:", len(b.Notes))
	}

	kick := b.Notes[0]
	if kick.Component != "Kick" || kick.Velocity != 0.9 || kick.Lane != game.LaneUnset {
		t.Fatal("kick note:", kick)
	}

	// Velocity defaults when omitted and clamps when out of range.
	if b.Notes[1].Velocity != 0.8 {
		t.Fatal("default velocity:", b.Notes[1].Velocity)
	}
	if b.Notes[2].Velocity != 1.0 {
		t.Fatal("clamped velocity:", b.Notes[2].Velocity)
	}

	// Stored lane and duration parse through the optional fields.
	if b.Notes[3].Lane != 5 {
		t.Fatal("stored lane:", b.Notes[3].Lane)
	}
	if b.Notes[4].Duration != 750*time.Millisecond || b.Notes[4].Lane != game.LaneUnset {
		t.Fatal("duration note:", b.Notes[4])
	}
}

func TestParseOffsetShiftsTimes(t *testing.T) {
	p := DefaultParser{}
	b, err := p.ParseData([]byte(
		"#OFFSET:250;\n#BPMS:0=100;\n#NOTES:\n1000,Kick,0.9\n;\n"))
	if nil != err {
		t.Fatal(err)
	}
	if b.Notes[0].Time != 1250*time.Millisecond {
		t.Fatal("note time:", b.Notes[0].Time)
	}
	if b.TimingPoints[0].Time != 250*time.Millisecond {
		t.Fatal("timing point time:", b.TimingPoints[0].Time)
	}
	if b.TimingPoints[0].BeatsPerMeasure != 4 {
		t.Fatal("meter should default to 4, got", b.TimingPoints[0].BeatsPerMeasure)
	}
}

func TestParseBadBPMs(t *testing.T) {
	p := DefaultParser{}
	for _, bad := range []string{
		"#BPMS:abc=120;\n",
		"#BPMS:0=;\n",
		"#BPMS:0=120@x/4;\n",
	} {
		if _, err := p.ParseData([]byte(bad)); nil == err {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
