//go:build !linux

package rawinput

// flushInput is a no-op off Linux; queued bytes are read as keys.
func flushInput(fd int) error {
	return nil
}
