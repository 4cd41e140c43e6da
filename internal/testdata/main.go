package testdata

import (
	"github.com/meara/drumfall/internal/game"
	"github.com/meara/drumfall/internal/parser"
)

// GetBeatmap parses the embedded chart below. Two measures of a basic
// rock groove at 120, then a tempo change to 150 with a 3/4 meter.
func GetBeatmap() (*game.Beatmap, error) {
	p := parser.DefaultParser{}
	return p.ParseData([]byte(data))
}

const data = `#TITLE:Fixture Groove;
#ARTIST:drumfall;
#AUDIO:groove.ogg;
#OFFSET:0;
#BPMS:0=120@4/4,4000=150@3/4;
#NOTES:
0,Kick,0.9
0,HiHatClosed,0.5
250,HiHatClosed,0.4
500,Snare,0.85
500,HiHatClosed,0.5
750,HiHatClosed,0.4
1000,Kick,0.9
1000,HiHatClosed,0.5
1250,HiHatClosed,0.4
1500,Snare,0.85
1500,HiHatClosed,0.5
1750,HiHatOpen,0.6
2000,Kick,0.9
2000,Crash_L,1.0
2500,Snare,0.85
2750,tom1,0.7
3000,tom2,0.7
3250,tom3,0.75
3500,Snare,0.9
3750,Kick,0.8
4000,Kick,0.9
4000,Ride,0.6
4400,Ride,0.5
4800,Snare,0.85
5200,Ride,0.5
5600,Kick,0.9
6000,Cowbell,0.6,5
6400,Splash_R,0.7
;
`
