package render

import (
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (columns, rows int, err error)
	Clear()
	AddDecoration(col, row int, content string, frames int)
	RenderLoop(delay time.Duration, render func(start time.Time, duration time.Duration) bool)
	Fill(row, column int, message string)
	FillColor(row, column int, c color.RGBA, message string)
}
