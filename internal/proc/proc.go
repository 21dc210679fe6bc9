// Package proc runs the menu's external collaborators: shell-interpreted
// commands, the interactive shell, and the replacement of the menu's own
// process image.
package proc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// DefaultInterpreter interprets command strings, so a bound command may be
// a multi-word pipeline.
const DefaultInterpreter = "/bin/sh"

// Runner is the process capability the menu dispatches to.
type Runner interface {
	// Run executes command through the shell interpreter as a foreground
	// child and waits for it. A non-zero exit is returned as an error.
	Run(command string) error
	// Interactive runs shell as an interactive foreground child.
	Interactive(shell string) error
	// Replace replaces the current process image with self. It only
	// returns on failure.
	Replace(self Self) error
}

// Self describes an invocation of a program.
type Self struct {
	Path string
	Args []string
	Env  []string
}

// Current describes the running program: its executable, arguments and
// environment.
func Current() (Self, error) {
	path, err := os.Executable()
	if err != nil {
		return Self{}, fmt.Errorf("locate executable: %w", err)
	}
	return Self{
		Path: path,
		Args: append([]string(nil), os.Args...),
		Env:  os.Environ(),
	}, nil
}

// System is the Runner backed by the operating system. Children inherit
// the configured streams.
type System struct {
	Interpreter string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
}

// NewSystem returns a System wired to the process's standard streams.
func NewSystem() *System {
	return &System{
		Interpreter: DefaultInterpreter,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

// Run implements Runner.
func (s *System) Run(command string) error {
	interp := s.Interpreter
	if interp == "" {
		interp = DefaultInterpreter
	}
	return s.foreground(exec.Command(interp, "-c", command))
}

// Interactive implements Runner.
func (s *System) Interactive(shell string) error {
	return s.foreground(exec.Command(shell))
}

// Replace implements Runner.
func (s *System) Replace(self Self) error {
	if self.Path == "" {
		return errors.New("replace: empty executable path")
	}
	return replace(self)
}

// foreground runs cmd and waits for it. Keyboard signals sent to the
// terminal's process group while the child runs are meant for the child;
// the menu catches and drops its copy. Caught (not ignored) signals revert
// to their default in the child.
func (s *System) foreground(cmd *exec.Cmd) error {
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGQUIT)
	defer signal.Stop(sigs)

	return cmd.Run()
}

// ExitCode returns the exit status carried by err, or -1 when err does not
// come from a child that ran to completion.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Ran reports whether err is nil or describes a child that started and
// then exited or was killed, as opposed to one that never started.
func Ran(err error) bool {
	if err == nil {
		return true
	}
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
