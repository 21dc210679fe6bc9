// Package menu implements the Micro Journal menu: the static key table,
// the dispatcher that acts on a key, and the render/read/dispatch loop.
package menu

import (
	"fmt"
	"strconv"
	"unicode"

	"golang.org/x/text/cases"
)

// ActionKind identifies what a key does.
type ActionKind int

const (
	// ActionUnrecognized is the result of looking up an unbound key.
	ActionUnrecognized ActionKind = iota
	// ActionRunCommand runs an external command string through the shell.
	ActionRunCommand
	// ActionShell starts an interactive shell.
	ActionShell
	// ActionReload replaces the menu process with a fresh copy of itself.
	ActionReload
	// ActionQuit stops the menu loop.
	ActionQuit
)

func (k ActionKind) String() string {
	switch k {
	case ActionRunCommand:
		return "RUN"
	case ActionShell:
		return "SHELL"
	case ActionReload:
		return "RELOAD"
	case ActionQuit:
		return "QUIT"
	default:
		return "UNRECOGNIZED"
	}
}

// Action is what a menu key is bound to. Command is set only for
// ActionRunCommand.
type Action struct {
	Kind    ActionKind
	Command string
}

// RunCommand binds a key to an external command string.
func RunCommand(command string) Action {
	return Action{Kind: ActionRunCommand, Command: command}
}

// Internal actions.
var (
	StartShell = Action{Kind: ActionShell}
	ReloadSelf = Action{Kind: ActionReload}
	Quit       = Action{Kind: ActionQuit}
)

func (a Action) String() string {
	if a.Kind == ActionRunCommand {
		return "RUN:" + a.Command
	}
	return a.Kind.String()
}

// Entry is one menu item.
type Entry struct {
	Key      rune   // matched case-insensitively
	Label    string // may contain pipe codes or SGR sequences
	KeyColor string // pipe code for the key letter; defaults to |10
	Action   Action
}

// Table is an immutable key table with a display layout.
type Table struct {
	entries []Entry
	byKey   map[rune]Entry
	rows    [][]rune
}

// NewTable validates entries and rows and returns a Table. Keys must be
// unique after case folding; every key named in rows must be bound.
// Entries absent from rows are bound but not drawn.
func NewTable(entries []Entry, rows [][]rune) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byKey:   make(map[rune]Entry, len(entries)),
	}
	for _, e := range entries {
		if e.Key == 0 || unicode.IsSpace(e.Key) || !unicode.IsPrint(e.Key) {
			return nil, fmt.Errorf("menu entry %q: key %s is not a printable character", e.Label, strconv.QuoteRune(e.Key))
		}
		if e.Action.Kind == ActionUnrecognized {
			return nil, fmt.Errorf("menu entry %q: no action", e.Label)
		}
		if e.Action.Kind == ActionRunCommand && e.Action.Command == "" {
			return nil, fmt.Errorf("menu entry %q: empty command", e.Label)
		}
		k := foldKey(e.Key)
		if prev, dup := t.byKey[k]; dup {
			return nil, fmt.Errorf("menu key %s bound twice: %q and %q", strconv.QuoteRune(e.Key), prev.Label, e.Label)
		}
		if e.KeyColor == "" {
			e.KeyColor = "|10"
		}
		t.byKey[k] = e
		t.entries = append(t.entries, e)
	}

	seen := make(map[rune]bool)
	for i, row := range rows {
		keys := make([]rune, 0, len(row))
		for _, r := range row {
			k := foldKey(r)
			if _, ok := t.byKey[k]; !ok {
				return nil, fmt.Errorf("menu layout row %d: key %s is not bound", i+1, strconv.QuoteRune(r))
			}
			if seen[k] {
				return nil, fmt.Errorf("menu layout row %d: key %s drawn twice", i+1, strconv.QuoteRune(r))
			}
			seen[k] = true
			keys = append(keys, k)
		}
		t.rows = append(t.rows, keys)
	}
	return t, nil
}

// Lookup returns the action bound to key, case-insensitively. Unbound keys
// yield an ActionUnrecognized action.
func (t *Table) Lookup(key rune) Action {
	if e, ok := t.byKey[foldKey(key)]; ok {
		return e.Action
	}
	return Action{Kind: ActionUnrecognized}
}

// Entries returns a copy of the entries in declaration order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of bound keys.
func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) entry(key rune) Entry {
	return t.byKey[foldKey(key)]
}

func foldKey(r rune) rune {
	for _, f := range cases.Fold().String(string(r)) {
		return f
	}
	return r
}
