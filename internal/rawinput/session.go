// Package rawinput reads single keystrokes from a terminal in raw mode.
//
// Raw mode is held only for the duration of one read. A Session is the
// capability "this terminal is raw for the holder"; it is acquired right
// before the read and released by a deferred call on every exit path.
package rawinput

import (
	"fmt"
	"sync"

	"golang.org/x/term"
)

// Session is an acquired raw-mode terminal. Release restores the settings
// captured by Acquire. It is safe to call Release more than once.
type Session struct {
	fd   int
	prev *term.State

	once sync.Once
	err  error
}

// Acquire saves the line discipline of fd and switches it to raw mode
// (no canonical buffering, no echo, no signal generation).
func Acquire(fd int) (*Session, error) {
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return &Session{fd: fd, prev: prev}, nil
}

// Release restores the terminal settings saved by Acquire.
func (s *Session) Release() error {
	s.once.Do(func() {
		if err := term.Restore(s.fd, s.prev); err != nil {
			s.err = fmt.Errorf("restore terminal mode: %w", err)
		}
	})
	return s.err
}
