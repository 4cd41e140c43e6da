package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"

	"github.com/meara/drumfall/internal/config"
	"github.com/meara/drumfall/internal/game"
	"github.com/meara/drumfall/internal/input"
	"github.com/meara/drumfall/internal/lane"
	"github.com/meara/drumfall/internal/parser"
	"github.com/meara/drumfall/internal/playfield"
	"github.com/meara/drumfall/internal/render"
	"github.com/meara/drumfall/internal/score"
	"github.com/meara/drumfall/internal/theme"
)

type Program struct {
	Parser   parser.Parser
	Scorer   score.Scorer
	Theme    theme.Theme
	Renderer render.Renderer

	layout  *lane.Layout
	field   *playfield.Playfield
	beatmap *game.Beatmap
	keys    *input.Handler

	audioFile, chartFile string
	streamer             beep.StreamSeekCloser

	columns, rows int
	hitRow        int
	laneCols      []int
	sideCol       int

	results []score.NoteResult
	past    []score.Session
	lastEnd time.Duration
}

func (p *Program) Init() error {
	p.Parser = &parser.DefaultParser{}
	p.Scorer = &score.DefaultScorer{}
	p.Theme = &theme.DefaultTheme{}
	p.Renderer = &render.DefaultRenderer{}

	if err := filepath.Walk(*config.Directory, func(fp string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch path.Ext(info.Name()) {
		case ".mp3", ".ogg":
			p.audioFile = fp
		case ".drum":
			p.chartFile = fp
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}
	if p.audioFile == "" || p.chartFile == "" {
		return errors.New("unable to find .drum and .mp3/.ogg file in given directory")
	}

	beatmap, err := p.Parser.Parse(p.chartFile)
	if nil != err {
		return err
	}
	p.beatmap = beatmap

	p.layout = lane.DefaultFactory.ForPreset(lane.PresetForLaneCount(int(*config.Lanes)))
	lane.ApplyToBeatmap(p.beatmap, p.layout)

	p.field = playfield.New(p.layout)
	p.field.SetZoom(*config.Zoom)
	p.field.SetKickShared(*config.KickLine)
	p.field.SetPreview(*config.Preview)
	p.field.Load(p.beatmap)

	if err := p.Scorer.Init(); nil != err {
		return err
	}
	p.past = p.Scorer.Load(p.beatmap)

	p.keys, err = input.Open(p.layout.LaneCount())
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}

	p.columns, p.rows, err = p.Renderer.Size()
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	p.hitRow = p.rows - int(*config.BarRow)

	mc := p.columns >> 1
	spacing := 2 * int(*config.ColumnSpacing)
	count := p.layout.LaneCount()
	p.laneCols = make([]int, count)
	for i := range p.laneCols {
		p.laneCols[i] = mc + int(float64(spacing)*(float64(i)-float64(count-1)/2))
	}
	p.sideCol = p.laneCols[0] - 30
	if p.sideCol < 2 {
		p.sideCol = 2
	}

	if len(p.beatmap.Notes) > 0 {
		last := p.beatmap.Notes[0]
		for _, n := range p.beatmap.Notes {
			if n.Time > last.Time {
				last = n
			}
		}
		p.lastEnd = last.Time + last.Duration
	}

	p.field.OnJudgement = p.onJudgement
	return nil
}

func (p *Program) Deinit() {
	p.Scorer.Deinit()
	if nil != p.streamer {
		p.streamer.Close()
	}
	if nil != p.keys {
		if err := p.keys.Close(); nil != err {
			log.Println("unable to close keyboard:", err)
		}
	}
}

func (p *Program) openAudio() error {
	f, err := os.Open(p.audioFile)
	if nil != err {
		return err
	}
	var format beep.Format
	if path.Ext(p.audioFile) == ".ogg" {
		p.streamer, format, err = vorbis.Decode(f)
	} else {
		p.streamer, format, err = mp3.Decode(f)
	}
	if nil != err {
		return err
	}
	return speaker.Init(
		beep.SampleRate(math.Round(float64(format.SampleRate)**config.Rate)),
		format.SampleRate.N(time.Second/60),
	)
}

// transport converts wall time since the loop start into chart time,
// applying the playback rate and the global offset.
func transport(duration time.Duration) time.Duration {
	return time.Duration(float64(duration)**config.Rate) + *config.Offset
}

func (p *Program) onJudgement(res playfield.Result) {
	p.results = append(p.results, score.NoteResult{
		Time:   res.Note.Time,
		Tier:   res.Tier,
		Offset: res.Offset,
	})

	col := p.laneCols[p.layout.KickLane]
	if res.Note.Lane >= 0 && res.Note.Lane < len(p.laneCols) {
		col = p.laneCols[res.Note.Lane]
	}
	p.Renderer.AddDecoration(col-3, p.hitRow-1, p.Theme.JudgementName(res.Tier), 30)
}

func (p *Program) Run() error {
	if err := p.openAudio(); nil != err {
		return err
	}

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	defer func() {
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal:", err)
		}
	}()

	go func() {
		time.Sleep(*config.Delay)
		speaker.Play(p.streamer)
	}()

	p.Renderer.RenderLoop(*config.Delay, p.frame)

	summary := score.Summarize(p.results)
	if summary.Hits > 0 && !*config.Preview {
		if err := p.Scorer.Save(p.beatmap, *config.Rate, p.results); nil != err {
			log.Println("unable to save session:", err)
		}
	}
	return nil
}

// frame is the per-tick callback: advance the playfield to the
// transport time, judge buffered inputs, draw the field.
func (p *Program) frame(start time.Time, duration time.Duration) bool {
	now := transport(duration)

	if now > p.lastEnd+5*time.Second {
		return false
	}

	p.field.Tick(now)

	for _, ev := range p.keys.Drain() {
		if ev.Quit {
			return false
		}
		if ev.Lane < 0 {
			continue
		}
		p.field.HandleInput(ev.Lane, now)
	}

	p.Renderer.Clear()
	p.renderField(now)
	p.renderStats(now)
	return true
}

func (p *Program) renderField(now time.Duration) {
	kickLane := p.layout.KickLane
	for i, col := range p.laneCols {
		p.Fill(p.hitRow, col, p.Theme.RenderHitField(i, kickLane))
	}
	if *config.KickLine {
		// The shared kick timing line spans the whole highway.
		width := p.laneCols[len(p.laneCols)-1] - p.laneCols[0]
		p.Fill(p.hitRow+1, p.laneCols[0], strings.Repeat("─", width+1))
	}

	for _, n := range p.field.Visible() {
		if n.Judged && n.Tier != game.TierMiss {
			continue
		}
		row := int(math.Round(n.Progress * float64(p.hitRow)))
		if row < 1 || row >= p.rows {
			continue
		}
		if n.Lane < 0 || n.Lane >= len(p.laneCols) {
			continue
		}
		if *config.KickLine && n.Kick {
			width := p.laneCols[len(p.laneCols)-1] - p.laneCols[0]
			p.Fill(row, p.laneCols[0], strings.Repeat("━", width+1))
			continue
		}
		p.Fill(row, p.laneCols[n.Lane], p.Theme.RenderNote(n))
	}
}

func (p *Program) renderStats(now time.Duration) {
	summary := score.Summarize(p.results)

	p.Fill(2, p.sideCol, fmt.Sprintf("%v - %v", p.beatmap.Artist, p.beatmap.Title))
	p.Fill(4, p.sideCol, fmt.Sprintf("     Time:  %6.1fs", now.Seconds()))
	p.Fill(5, p.sideCol, fmt.Sprintf(" Approach:  %6v", p.field.Approach().Round(time.Millisecond)))
	p.Fill(7, p.sideCol, fmt.Sprintf(" Error dt:  %6.0f ms", float64(summary.TotalError)/float64(time.Millisecond)))
	p.Fill(8, p.sideCol, fmt.Sprintf("    Stdev:  %6.2f ms", summary.Stdev))
	p.Fill(9, p.sideCol, fmt.Sprintf("     Mean:  %6.2f ms", summary.Mean))
	p.Fill(10, p.sideCol, fmt.Sprintf("    Notes:  %6v", len(p.beatmap.Notes)))
	p.Fill(11, p.sideCol, fmt.Sprintf(" Sessions:  %6v", len(p.past)))

	for i, j := range game.Judgements {
		c := p.Theme.JudgementColor(j.Tier)
		line := fmt.Sprintf("%7v:  %6v", j.Name, summary.Counts[j.Tier])
		p.Renderer.FillColor(13+i, p.sideCol, c, line)
	}
}

func (p *Program) Fill(row, col int, message string) {
	p.Renderer.Fill(row, col, message)
}
