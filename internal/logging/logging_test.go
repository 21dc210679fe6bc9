package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDebugDisabled(t *testing.T) {
	DebugEnabled = false
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	Debug("this should not appear")

	if buf.Len() > 0 {
		t.Errorf("Debug output when disabled: %s", buf.String())
	}
}

func TestDebugEnabled(t *testing.T) {
	DebugEnabled = true
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	Debug("test message %d", 42)

	if !bytes.Contains(buf.Bytes(), []byte("DEBUG: test message 42")) {
		t.Errorf("Expected debug output, got: %s", buf.String())
	}
	DebugEnabled = false
}

func TestSetupWritesToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	path := filepath.Join(t.TempDir(), "logs", "menu.log")
	closer, err := Setup(path)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	log.Printf("INFO: hello from the test")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	log.SetOutput(os.Stderr)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "INFO: hello from the test") {
		t.Errorf("log file missing message: %q", line)
	}
	if !strings.HasPrefix(line, "["+RunID[:8]+"] ") {
		t.Errorf("log line missing run prefix: %q", line)
	}
}

func TestSetupEmptyPathDiscards(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	closer, err := Setup("")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()
	if w := log.Writer(); w == os.Stderr {
		t.Errorf("log output still stderr after Setup(\"\")")
	}
}

func TestSetupUnwritableDirectory(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Setup(filepath.Join(blocker, "menu.log")); err == nil {
		t.Fatal("Setup under a regular file succeeded, want error")
	}
}
