package theme

import (
	"image/color"

	"github.com/meara/drumfall/internal/game"
)

type Theme interface {
	RenderNote(n *game.Note) string
	RenderHitField(lane, kickLane int) string
	JudgementName(t game.Tier) string
	JudgementColor(t game.Tier) color.RGBA
}
