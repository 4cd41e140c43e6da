package parser

import (
	"fmt"
	"io/ioutil"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/meara/drumfall/internal/game"
)

// DefaultParser reads the sectioned .drum chart format:
//
//	#TITLE:name;
//	#ARTIST:name;
//	#AUDIO:file.ogg;
//	#OFFSET:0;
//	#BPMS:0=120@4/4,32000=140@3/4;
//	#NOTES:
//	timeMs,component,velocity[,lane[,durationMs]]
//	;
//
// Notes may be unsorted; the scheduler establishes time order. Bad
// note lines are skipped, not fatal, since charts are hand-edited.
type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*game.Beatmap, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	return p.ParseData(data)
}

func (p *DefaultParser) ParseData(data []byte) (*game.Beatmap, error) {
	str := strings.ReplaceAll(string(data), "\r", "")

	b := &game.Beatmap{}
	offset := time.Duration(0)

	for _, section := range strings.Split(str, "\n#") {
		section = strings.TrimPrefix(strings.TrimSpace(section), "#")
		switch {
		case strings.HasPrefix(section, "TITLE:"):
			b.Title = sectionValue(section, "TITLE:")
		case strings.HasPrefix(section, "ARTIST:"):
			b.Artist = sectionValue(section, "ARTIST:")
		case strings.HasPrefix(section, "AUDIO:"):
			b.Audio = sectionValue(section, "AUDIO:")
		case strings.HasPrefix(section, "OFFSET:"):
			ms, err := strconv.ParseFloat(sectionValue(section, "OFFSET:"), 64)
			if nil != err {
				return nil, fmt.Errorf("unable to parse offset: %w", err)
			}
			offset = time.Duration(ms * float64(time.Millisecond))
		case strings.HasPrefix(section, "BPMS:"):
			points, err := parseBPMs(sectionValue(section, "BPMS:"))
			if nil != err {
				return nil, err
			}
			b.TimingPoints = points
		case strings.HasPrefix(section, "NOTES:"):
			body := strings.TrimPrefix(section, "NOTES:")
			b.Notes = append(b.Notes, parseNotes(body)...)
		}
	}

	if offset != 0 {
		for _, n := range b.Notes {
			n.Time += offset
		}
		for i := range b.TimingPoints {
			b.TimingPoints[i].Time += offset
		}
	}

	return b, nil
}

func sectionValue(section, prefix string) string {
	v := strings.TrimPrefix(section, prefix)
	v = strings.TrimSuffix(strings.TrimSpace(v), ";")
	return strings.TrimSpace(v)
}

// parseBPMs reads a "timeMs=bpm[@num/den]" list. The meter defaults to
// 4/4 and only the numerator matters to scheduling.
func parseBPMs(value string) ([]game.TimingPoint, error) {
	points := []game.TimingPoint{}
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("unable to parse bpm entry %q", entry)
		}
		ms, err := strconv.ParseFloat(parts[0], 64)
		if nil != err {
			return nil, fmt.Errorf("unable to parse bpm time %q: %w", parts[0], err)
		}

		rest := parts[1]
		beats := 4
		if at := strings.IndexByte(rest, '@'); at >= 0 {
			meter := rest[at+1:]
			rest = rest[:at]
			if slash := strings.IndexByte(meter, '/'); slash >= 0 {
				meter = meter[:slash]
			}
			n, err := strconv.Atoi(strings.TrimSpace(meter))
			if nil != err {
				return nil, fmt.Errorf("unable to parse meter in %q: %w", entry, err)
			}
			if n > 0 {
				beats = n
			}
		}
		bpm, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if nil != err {
			return nil, fmt.Errorf("unable to parse bpm value %q: %w", rest, err)
		}

		points = append(points, game.TimingPoint{
			Time:            time.Duration(ms * float64(time.Millisecond)),
			BPM:             bpm,
			BeatsPerMeasure: beats,
		})
	}
	return points, nil
}

func parseNotes(body string) []*game.Note {
	notes := []*game.Note{}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == ";" || strings.HasPrefix(line, "//") {
			continue
		}
		line = strings.TrimSuffix(line, ";")

		n, err := parseNoteLine(line)
		if nil != err {
			log.Println("skipping note line:", err)
			continue
		}
		notes = append(notes, n)
	}
	return notes
}

func parseNoteLine(line string) (*game.Note, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return nil, fmt.Errorf("note %q needs at least time and component", line)
	}

	ms, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if nil != err {
		return nil, fmt.Errorf("note time %q: %w", fields[0], err)
	}

	n := &game.Note{
		Time:      time.Duration(ms * float64(time.Millisecond)),
		Component: strings.TrimSpace(fields[1]),
		Velocity:  0.8,
		Lane:      game.LaneUnset,
	}

	if len(fields) > 2 && strings.TrimSpace(fields[2]) != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if nil != err {
			return nil, fmt.Errorf("note velocity %q: %w", fields[2], err)
		}
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		n.Velocity = v
	}
	if len(fields) > 3 && strings.TrimSpace(fields[3]) != "" {
		lane, err := strconv.Atoi(strings.TrimSpace(fields[3]))
		if nil != err {
			return nil, fmt.Errorf("note lane %q: %w", fields[3], err)
		}
		n.Lane = lane
	}
	if len(fields) > 4 && strings.TrimSpace(fields[4]) != "" {
		d, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
		if nil != err {
			return nil, fmt.Errorf("note duration %q: %w", fields[4], err)
		}
		n.Duration = time.Duration(d * float64(time.Millisecond))
	}
	return n, nil
}
