package menu

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/microjournal/mjmenu/internal/ansi"
	"github.com/microjournal/mjmenu/internal/logging"
	"github.com/microjournal/mjmenu/internal/proc"
	"github.com/microjournal/mjmenu/internal/rawinput"
	"github.com/microjournal/mjmenu/internal/termsize"
)

// Outcome is the result of dispatching one key.
type Outcome int

const (
	// OutcomeSuccess means the bound action completed.
	OutcomeSuccess Outcome = iota
	// OutcomeFailure means a command exited non-zero or could not start.
	OutcomeFailure
	// OutcomeInvalid means the key was not bound.
	OutcomeInvalid
	// OutcomeQuit asks the loop to stop: the Quit entry, or Ctrl-C/Ctrl-D
	// at a "press any key" prompt.
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeQuit:
		return "quit"
	}
	return "outcome(" + strconv.Itoa(int(o)) + ")"
}

// KeyReader reads single keys. *rawinput.Reader implements it.
type KeyReader interface {
	ReadKey(ctx context.Context) (byte, error)
	// Discard drops input already queued but not yet read.
	Discard() error
}

// Dispatcher acts on a key using the static table. It holds no state of
// its own between calls.
type Dispatcher struct {
	Table  *Table
	Runner proc.Runner
	Keys   KeyReader  // read for "press any key" pauses
	Out    io.Writer  // the screen
	Width  func() int // current terminal width
	Shell  string     // interactive shell path
	Self   proc.Self  // invocation used for reload; zero means proc.Current()
}

// Dispatch case-folds key, looks it up and performs its action. Failures
// of external commands are reported on screen and returned as
// OutcomeFailure; they are never fatal.
func (d *Dispatcher) Dispatch(ctx context.Context, key rune) Outcome {
	action := d.Table.Lookup(key)
	start := time.Now()
	logging.Debug("dispatch: key %s -> %s", strconv.QuoteRune(key), action)

	var outcome Outcome
	switch action.Kind {
	case ActionRunCommand:
		outcome = d.runCommand(ctx, action.Command)
	case ActionShell:
		outcome = d.startShell(ctx)
	case ActionReload:
		outcome = d.reload(ctx)
	case ActionQuit:
		outcome = OutcomeQuit
	default:
		d.printf("\n|12Invalid choice: %s|23\n", escapePipes(displayKey(key)))
		outcome = OutcomeInvalid
		if d.pause(ctx) {
			outcome = OutcomeQuit
		}
	}

	log.Printf("INFO: key %s: %s -> %s (%v)", strconv.QuoteRune(key), action, outcome, time.Since(start).Round(time.Millisecond))
	return outcome
}

func (d *Dispatcher) runCommand(ctx context.Context, command string) Outcome {
	err := d.Runner.Run(command)
	if err == nil {
		return OutcomeSuccess
	}

	log.Printf("ERROR: command %q failed: %v", command, err)
	if code := proc.ExitCode(err); code >= 0 {
		d.printf("\n|12Error: '%s' exited with status %d|23\n", escapePipes(command), code)
	} else if proc.Ran(err) {
		d.printf("\n|12Error: '%s' failed: %s|23\n", escapePipes(command), escapePipes(err.Error()))
	} else {
		d.printf("\n|12Error: could not run '%s': %s|23\n", escapePipes(command), escapePipes(err.Error()))
	}
	if d.pause(ctx) {
		return OutcomeQuit
	}
	return OutcomeFailure
}

func (d *Dispatcher) startShell(ctx context.Context) Outcome {
	d.print(ansi.ClearScreen() + "\n")
	d.print(centered(d.width(), "|14Starting shell...|23", "Type 'exit' to return to menu"))
	d.print("\n")

	// The shell's exit status belongs to the last command typed in it, so
	// only a failure to start is reported.
	err := d.Runner.Interactive(d.Shell)
	if err != nil && !proc.Ran(err) {
		log.Printf("ERROR: shell %q failed to start: %v", d.Shell, err)
		d.printf("\n|12Error: could not start shell '%s': %s|23\n", escapePipes(d.Shell), escapePipes(err.Error()))
		if d.pause(ctx) {
			return OutcomeQuit
		}
		return OutcomeFailure
	}
	return OutcomeSuccess
}

func (d *Dispatcher) reload(ctx context.Context) Outcome {
	self := d.Self
	if self.Path == "" {
		cur, err := proc.Current()
		if err != nil {
			log.Printf("ERROR: reload: %v", err)
			d.printf("\n|12Error: cannot reload menu: %s|23\n", escapePipes(err.Error()))
			if d.pause(ctx) {
				return OutcomeQuit
			}
			return OutcomeFailure
		}
		self = cur
	}

	d.print(ansi.ClearScreen() + "\n")
	d.print(centered(d.width(), "|14Restarting menu...|23"))

	log.Printf("INFO: reloading: exec %s %q", self.Path, self.Args)
	if err := d.Runner.Replace(self); err != nil {
		log.Printf("ERROR: reload failed: %v", err)
		d.printf("\n|12Error: cannot reload menu: %s|23\n", escapePipes(err.Error()))
		if d.pause(ctx) {
			return OutcomeQuit
		}
		return OutcomeFailure
	}
	return OutcomeSuccess
}

// pause blocks until any key is pressed. Leftover bytes of the key that
// led here are discarded first so they cannot answer the prompt. It reports
// true when the user pressed Ctrl-C or Ctrl-D, or the context ended.
func (d *Dispatcher) pause(ctx context.Context) (stop bool) {
	d.print(ansi.Pipe("|07Press any key to continue...|23"))
	if err := d.Keys.Discard(); err != nil {
		logging.Debug("pause: %v", err)
	}
	_, err := d.Keys.ReadKey(ctx)
	d.print("\n")
	switch {
	case err == nil:
		return false
	case rawinput.IsTermination(err):
		log.Printf("INFO: stop requested at pause: %v", err)
		return true
	}
	log.Printf("WARN: pause: %v", err)
	return false
}

func (d *Dispatcher) width() int {
	if d.Width == nil {
		return termsize.DefaultWidth
	}
	return d.Width()
}

func (d *Dispatcher) print(s string) {
	_, _ = io.WriteString(d.Out, s)
}

// printf formats with pipe codes translated. Interpolated values must be
// passed through escapePipes.
func (d *Dispatcher) printf(format string, args ...any) {
	d.print(ansi.Pipe(fmt.Sprintf(format, args...)))
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "||")
}

func displayKey(k rune) string {
	if unicode.IsPrint(k) {
		return string(k)
	}
	return strconv.QuoteRune(k)
}
