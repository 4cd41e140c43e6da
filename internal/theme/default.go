package theme

import (
	"fmt"
	"image/color"

	"github.com/meara/drumfall/internal/game"
)

type DefaultTheme struct{}

const (
	noteSym   = "⬤"
	accentSym = "◉"
	kickSym   = "▬"
	barSym    = "─"
	kickBar   = "━"
)

var tierColors = map[game.Tier]color.RGBA{
	game.TierPerfect: {R: 173, G: 236, B: 236},
	game.TierGreat:   {R: 0, G: 236, B: 128},
	game.TierGood:    {R: 0, G: 118, B: 236},
	game.TierMeh:     {R: 236, G: 195, B: 0},
	game.TierMiss:    {R: 236, G: 30, B: 0},
	game.TierNone:    {R: 106, G: 106, B: 106},
}

// RenderNote draws a note glyph tinted by velocity; accented hits get
// the heavier glyph so they read at a glance.
func (t *DefaultTheme) RenderNote(n *game.Note) string {
	sym := noteSym
	if n.Kick {
		sym = kickSym
	} else if n.Accent() {
		sym = accentSym
	}
	v := n.Velocity
	if v < 0.3 {
		v = 0.3
	}
	c := uint8(255 * v)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c, c, c, sym)
}

func (t *DefaultTheme) RenderHitField(lane, kickLane int) string {
	if lane == kickLane {
		return kickBar
	}
	return barSym
}

func (t *DefaultTheme) JudgementName(tier game.Tier) string {
	c := tierColors[tier]
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%7s\033[0m", c.R, c.G, c.B, tier)
}

func (t *DefaultTheme) JudgementColor(tier game.Tier) color.RGBA {
	return tierColors[tier]
}
