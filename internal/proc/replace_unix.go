//go:build !windows

package proc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func replace(self Self) error {
	if err := unix.Exec(self.Path, self.Args, self.Env); err != nil {
		return fmt.Errorf("exec %s: %w", self.Path, err)
	}
	return nil
}
