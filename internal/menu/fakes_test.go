package menu

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/microjournal/mjmenu/internal/config"
	"github.com/microjournal/mjmenu/internal/proc"
	"github.com/microjournal/mjmenu/internal/rawinput"
)

// fakeRunner records every process request instead of starting one.
type fakeRunner struct {
	runs     []string
	shells   []string
	replaced []proc.Self

	runErr     map[string]error
	shellErr   error
	replaceErr error
}

func (f *fakeRunner) Run(command string) error {
	f.runs = append(f.runs, command)
	return f.runErr[command]
}

func (f *fakeRunner) Interactive(shell string) error {
	f.shells = append(f.shells, shell)
	return f.shellErr
}

func (f *fakeRunner) Replace(self proc.Self) error {
	f.replaced = append(f.replaced, self)
	return f.replaceErr
}

type keyResult struct {
	key   byte
	err   error
	burst int // nonzero for bytes that arrive together, like an arrow key
}

// scriptedKeys replays keys, then reports end of input. Bytes added with
// burst arrive together, so Discard after reading one of them drops the
// rest, the way a terminal input flush does.
type scriptedKeys struct {
	script   []keyResult
	reads    int
	discards int

	bursts int
	last   int
}

func keys(input string) *scriptedKeys {
	return (&scriptedKeys{}).typed(input)
}

// typed appends keys pressed one at a time.
func (k *scriptedKeys) typed(input string) *scriptedKeys {
	for i := 0; i < len(input); i++ {
		k.script = append(k.script, keyResult{key: input[i]})
	}
	return k
}

// burst appends bytes sent by a single keypress or a paste.
func (k *scriptedKeys) burst(input string) *scriptedKeys {
	k.bursts++
	for i := 0; i < len(input); i++ {
		k.script = append(k.script, keyResult{key: input[i], burst: k.bursts})
	}
	return k
}

func (k *scriptedKeys) then(err error) *scriptedKeys {
	k.script = append(k.script, keyResult{err: err})
	return k
}

// ReadKey applies the same byte classification as the raw reader.
func (k *scriptedKeys) ReadKey(ctx context.Context) (byte, error) {
	k.reads++
	if ctx.Err() != nil {
		return 0, rawinput.ErrInterrupt
	}
	if len(k.script) == 0 {
		return 0, rawinput.ErrEOF
	}
	next := k.script[0]
	k.script = k.script[1:]
	k.last = next.burst
	if next.err != nil {
		return 0, next.err
	}
	switch next.key {
	case 0x03:
		return 0, rawinput.ErrInterrupt
	case 0x04:
		return 0, rawinput.ErrEOF
	}
	return next.key, nil
}

func (k *scriptedKeys) Discard() error {
	k.discards++
	for k.last != 0 && len(k.script) > 0 && k.script[0].burst == k.last {
		k.script = k.script[1:]
	}
	return nil
}

func (k *scriptedKeys) remaining() int {
	return len(k.script)
}

var testConfig = config.Config{ScriptsDir: "~/.microjournal/scripts", Shell: "/bin/zsh"}

type harness struct {
	table  *Table
	runner *fakeRunner
	keys   *scriptedKeys
	out    *bytes.Buffer
	loop   *Loop
}

func newHarness(t testing.TB, input *scriptedKeys) *harness {
	t.Helper()
	table, err := DefaultTable(testConfig)
	if err != nil {
		t.Fatalf("DefaultTable: %v", err)
	}
	h := &harness{
		table:  table,
		runner: &fakeRunner{runErr: map[string]error{}},
		keys:   input,
		out:    &bytes.Buffer{},
	}
	d := &Dispatcher{Runner: h.runner, Shell: testConfig.Shell}
	h.loop = NewLoop(table, d, input, h.out, func() int { return 100 })
	return h
}

var errTerminal = errors.New("inappropriate ioctl for device")
