package menu

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/microjournal/mjmenu/internal/ansi"
	"github.com/microjournal/mjmenu/internal/logging"
	"github.com/microjournal/mjmenu/internal/rawinput"
)

// State is a MenuLoop state.
type State int

const (
	// StateRendering draws a frame.
	StateRendering State = iota
	// StateAwaitingKey blocks on a single raw key read.
	StateAwaitingKey
	// StateDispatching acts on the key that was read.
	StateDispatching
	// StateStopped is terminal: the farewell has been written.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRendering:
		return "Rendering"
	case StateAwaitingKey:
		return "AwaitingKey"
	case StateDispatching:
		return "Dispatching"
	case StateStopped:
		return "Stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Farewell is written after the screen is cleared on the way out.
const Farewell = "|14Goodbye!|23"

// Loop is the render → read key → dispatch cycle.
type Loop struct {
	Table      *Table
	Dispatcher *Dispatcher
	Keys       KeyReader
	Out        io.Writer
	Width      func() int

	state State
}

// NewLoop wires a Loop and its Dispatcher to the same screen, key source
// and width probe.
func NewLoop(t *Table, d *Dispatcher, keys KeyReader, out io.Writer, width func() int) *Loop {
	d.Table = t
	d.Keys = keys
	d.Out = out
	d.Width = width
	return &Loop{Table: t, Dispatcher: d, Keys: keys, Out: out, Width: width}
}

// State returns the current state.
func (l *Loop) State() State {
	return l.state
}

// Run cycles until the user quits, presses Ctrl-C or Ctrl-D, or ctx is
// cancelled; each of those is a clean stop and returns nil. A non-nil
// error means the terminal could not be put into or out of raw mode.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.enter(StateRendering)
		_, _ = io.WriteString(l.Out, RenderFrame(l.Table, l.Width()))

		l.enter(StateAwaitingKey)
		key, err := l.Keys.ReadKey(ctx)
		if err != nil {
			if rawinput.IsTermination(err) {
				log.Printf("INFO: stopping: %v", err)
				l.stop()
				return nil
			}
			log.Printf("ERROR: terminal input failed: %v", err)
			return fmt.Errorf("menu: %w", err)
		}
		if !isKey(key) {
			// The rest of an escape sequence or multi-byte character
			// would otherwise be read as keys.
			if err := l.Keys.Discard(); err != nil {
				logging.Debug("menu: %v", err)
			}
			continue
		}

		l.enter(StateDispatching)
		if l.Dispatcher.Dispatch(ctx, rune(key)) == OutcomeQuit {
			l.stop()
			return nil
		}
	}
}

func (l *Loop) stop() {
	l.enter(StateStopped)
	_, _ = io.WriteString(l.Out, ansi.ClearScreen()+"\n"+ansi.Pipe(Farewell)+"\n")
}

func (l *Loop) enter(s State) {
	logging.Debug("menu: %s -> %s", l.state, s)
	l.state = s
}

// isKey reports whether b can be a menu key: a printable, non-space ASCII
// character. Whitespace, control bytes, DEL and the bytes of non-ASCII
// characters redraw the menu without dispatching.
func isKey(b byte) bool {
	return b > ' ' && b < 0x7f
}
