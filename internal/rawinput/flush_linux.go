//go:build linux

package rawinput

import "golang.org/x/sys/unix"

// flushInput empties the terminal's input queue.
func flushInput(fd int) error {
	return unix.IoctlSetInt(fd, unix.TCFLSH, unix.TCIFLUSH)
}
