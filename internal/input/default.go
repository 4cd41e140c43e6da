package input

import (
	"github.com/eiannone/keyboard"

	"github.com/meara/drumfall/internal/config"
)

// Event is one drained key press, already mapped to a lane.
type Event struct {
	Lane int  // -1 when the key is not bound to a lane
	Rune rune
	Quit bool
}

// Handler drains buffered key presses without blocking the tick loop.
type Handler struct {
	keys      <-chan keyboard.KeyEvent
	laneCount int
}

func Open(laneCount int) (*Handler, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, err
	}
	return &Handler{keys: keys, laneCount: laneCount}, nil
}

func (h *Handler) Close() error {
	return keyboard.Close()
}

// Drain returns the key presses that arrived since the last call.
func (h *Handler) Drain() []Event {
	events := []Event{}
	for i := len(h.keys); i > 0; i-- {
		key := <-h.keys
		if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
			events = append(events, Event{Lane: -1, Quit: true})
			continue
		}
		r := key.Rune
		if key.Key == keyboard.KeySpace {
			r = ' '
		}
		events = append(events, Event{
			Lane: config.KeyLane(r, h.laneCount),
			Rune: r,
		})
	}
	return events
}
