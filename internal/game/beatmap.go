package game

type Beatmap struct {
	Title  string
	Artist string
	Audio  string // Relative path to the audio file

	TimingPoints []TimingPoint
	Notes        []*Note
}

// Empty reports whether there is nothing to schedule. A nil beatmap is
// treated the same as one with no notes.
func (b *Beatmap) Empty() bool {
	return b == nil || len(b.Notes) == 0
}
