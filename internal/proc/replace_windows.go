//go:build windows

package proc

import (
	"fmt"
	"log"
	"os"
	"os/exec"
)

// replace approximates exec on Windows, which cannot swap a process image:
// it starts the new instance, waits for it and exits with its status. The
// new instance is a child of the old one rather than the same process.
func replace(self Self) error {
	cmd := exec.Command(self.Path)
	cmd.Args = self.Args
	cmd.Env = self.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", self.Path, err)
	}
	log.Printf("WARN: process replacement unavailable; running %s as child pid %d", self.Path, cmd.Process.Pid)
	if err := cmd.Wait(); err != nil {
		if code := ExitCode(err); code > 0 {
			os.Exit(code)
		}
		os.Exit(1)
	}
	os.Exit(0)
	return nil
}
