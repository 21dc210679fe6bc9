//go:build !windows

package ansi

import "os"

// EnableVT is a no-op on non-Windows systems; terminal emulators there
// interpret escape sequences natively.
func EnableVT(f *os.File) error {
	return nil
}
