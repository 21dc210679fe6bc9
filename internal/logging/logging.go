// Package logging provides diagnostic logging for the menu.
//
// The menu owns the terminal it draws on, so log output goes to a file (or
// nowhere) rather than to stderr. Messages use the standard log package with
// INFO:/WARN:/ERROR: prefixes; Debug adds a DEBUG: line when enabled.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DebugEnabled controls whether Debug() produces output.
// Set via the DEBUG=1 environment variable.
var DebugEnabled bool

// Debug logs a message only when DebugEnabled is true.
func Debug(format string, args ...any) {
	if DebugEnabled {
		log.Printf("DEBUG: "+format, args...)
	}
}

// RunID identifies one launch of the program. A reload replaces the
// process image and therefore starts a new run.
var RunID = uuid.NewString()

// Setup directs the standard logger to path, appending, and tags each line
// with a short form of RunID. An empty path discards all output.
// The returned closer releases the file.
func Setup(path string) (io.Closer, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix(fmt.Sprintf("[%s] ", shortID(RunID)))

	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
