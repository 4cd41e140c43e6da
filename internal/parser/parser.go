package parser

import "github.com/meara/drumfall/internal/game"

type Parser interface {
	Parse(file string) (*game.Beatmap, error)
}
