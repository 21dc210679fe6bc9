//go:build windows

package ansi

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// EnableVT turns on virtual terminal processing for the console behind f so
// SGR and clear-screen sequences are interpreted rather than printed.
func EnableVT(f *os.File) error {
	h := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return fmt.Errorf("GetConsoleMode: %w", err)
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}
	if err := windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return fmt.Errorf("SetConsoleMode: %w", err)
	}
	return nil
}
