// Package termsize discovers the display width of the controlling terminal.
//
// Sources are tried in order: a direct window-size query, the output of
// "stty size", and the COLUMNS environment variable. The first source that
// yields a positive column count wins; when every source fails the width is
// DefaultWidth. Failures are never returned to the caller.
package termsize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/microjournal/mjmenu/internal/logging"
	"golang.org/x/term"
)

const (
	// DefaultWidth is used when no source reports a usable width.
	DefaultWidth = 80

	// DefaultSttyTimeout bounds the external "stty size" call.
	DefaultSttyTimeout = 2 * time.Second
)

var errNonPositive = errors.New("non-positive column count")

// Probe reports terminal width. The zero value is not usable; call New.
// Each source is a field so that callers can replace or disable it.
type Probe struct {
	// Query asks the terminal driver for the window size directly.
	Query func() (cols int, err error)
	// Stty runs "stty size" and returns its raw output.
	Stty func(ctx context.Context) (string, error)
	// Getenv looks up environment variables.
	Getenv func(key string) string
	// SttyTimeout bounds each Stty call.
	SttyTimeout time.Duration
}

// New returns a Probe wired to stdout's terminal, the stty binary on PATH
// (reading from stdin) and the process environment.
func New() *Probe {
	return &Probe{
		Query:       func() (int, error) { return queryFd(int(os.Stdout.Fd())) },
		Stty:        runStty,
		Getenv:      os.Getenv,
		SttyTimeout: DefaultSttyTimeout,
	}
}

// Result is the outcome of one source.
type Result struct {
	Source string
	Width  int
	Err    error
}

type source struct {
	name string
	fn   func(p *Probe) (int, error)
}

var sources = []source{
	{"terminal query", (*Probe).fromQuery},
	{"stty size", (*Probe).fromStty},
	{"COLUMNS", (*Probe).fromEnv},
}

// Width returns the terminal width in columns. It always returns a positive
// value and is recomputed on every call.
func (p *Probe) Width() int {
	for _, src := range sources {
		cols, err := src.fn(p)
		if err == nil {
			return cols
		}
		logging.Debug("termsize: %s unavailable: %v", src.name, err)
	}
	return DefaultWidth
}

// Report runs every source, including those after the first success, and
// returns their results in priority order.
func (p *Probe) Report() []Result {
	results := make([]Result, 0, len(sources))
	for _, src := range sources {
		cols, err := src.fn(p)
		results = append(results, Result{Source: src.name, Width: cols, Err: err})
	}
	return results
}

func (p *Probe) fromQuery() (int, error) {
	if p.Query == nil {
		return 0, errors.New("no terminal query")
	}
	cols, err := p.Query()
	if err != nil {
		return 0, err
	}
	return positive(cols)
}

func (p *Probe) fromStty() (int, error) {
	if p.Stty == nil {
		return 0, errors.New("stty disabled")
	}
	timeout := p.SttyTimeout
	if timeout <= 0 {
		timeout = DefaultSttyTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := p.Stty(ctx)
	if err != nil {
		return 0, err
	}
	return ParseSttySize(out)
}

func (p *Probe) fromEnv() (int, error) {
	if p.Getenv == nil {
		return 0, errors.New("no environment")
	}
	val := strings.TrimSpace(p.Getenv("COLUMNS"))
	if val == "" {
		return 0, errors.New("COLUMNS not set")
	}
	cols, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("COLUMNS=%q: %w", val, err)
	}
	return positive(cols)
}

// ParseSttySize parses "rows cols" as printed by "stty size" and returns
// the column count.
func ParseSttySize(out string) (int, error) {
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, fmt.Errorf("unexpected stty output %q", out)
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return 0, fmt.Errorf("stty rows %q: %w", fields[0], err)
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("stty cols %q: %w", fields[1], err)
	}
	return positive(cols)
}

func positive(cols int) (int, error) {
	if cols <= 0 {
		return 0, errNonPositive
	}
	return cols, nil
}

func queryFd(fd int) (int, error) {
	cols, _, err := term.GetSize(fd)
	return cols, err
}

// runStty reports the size of the terminal on stdin, which is where stty
// looks.
func runStty(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "stty", "size")
	cmd.Stdin = os.Stdin
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("stty size: %w", err)
	}
	return string(out), nil
}

// QueryFd returns a terminal query bound to fd, for probing a descriptor
// other than stdout.
func QueryFd(fd int) func() (int, error) {
	return func() (int, error) { return queryFd(fd) }
}
