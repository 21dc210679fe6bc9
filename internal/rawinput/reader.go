package rawinput

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	keyInterrupt = 0x03 // ETX, Ctrl-C
	keyEOF       = 0x04 // EOT, Ctrl-D
)

var (
	// ErrInterrupt reports Ctrl-C during a read, or cancellation of the
	// read's context. Callers treat it as a request to terminate.
	ErrInterrupt = errors.New("rawinput: interrupted")

	// ErrEOF reports Ctrl-D during a read, or end of input.
	ErrEOF = errors.New("rawinput: end of input")
)

type readResult struct {
	key byte
	err error
}

// Reader reads one key at a time from a terminal.
type Reader struct {
	in io.Reader
	fd int

	// pending is a read started by an earlier call that was cancelled
	// before a byte arrived. The next call collects it instead of starting
	// a second reader on the same input.
	pending chan readResult
}

// NewReader returns a Reader for the terminal f, typically os.Stdin.
func NewReader(f *os.File) *Reader {
	return &Reader{in: f, fd: int(f.Fd())}
}

// ReadKey puts the terminal into raw mode, blocks until one byte arrives,
// restores the terminal and returns the byte.
//
// Ctrl-C and cancellation of ctx return ErrInterrupt; Ctrl-D and end of
// input return ErrEOF. The terminal settings are restored before ReadKey
// returns on every path. A failure to restore them is returned in place of
// any other result.
func (r *Reader) ReadKey(ctx context.Context) (key byte, err error) {
	if ctx.Err() != nil {
		return 0, ErrInterrupt
	}

	sess, err := Acquire(r.fd)
	if err != nil {
		return 0, err
	}
	defer func() {
		if rerr := sess.Release(); rerr != nil {
			key, err = 0, rerr
		}
	}()

	ch := r.pending
	if ch == nil {
		ch = make(chan readResult, 1)
		r.pending = ch
		go readOne(r.in, ch)
	}

	select {
	case res := <-ch:
		r.pending = nil
		return classify(res)
	case <-ctx.Done():
		return 0, ErrInterrupt
	}
}

// Discard drops input that arrived before the caller was ready for it: the
// trailing bytes of an escape sequence or of a multi-byte character. A key
// already collected by an outstanding read is dropped too.
func (r *Reader) Discard() error {
	if r.pending != nil {
		select {
		case <-r.pending:
			r.pending = nil
		default:
		}
	}
	if err := flushInput(r.fd); err != nil {
		return fmt.Errorf("discard input: %w", err)
	}
	return nil
}

func classify(res readResult) (byte, error) {
	if res.err != nil {
		if errors.Is(res.err, io.EOF) {
			return 0, ErrEOF
		}
		return 0, fmt.Errorf("read key: %w", res.err)
	}
	switch res.key {
	case keyInterrupt:
		return 0, ErrInterrupt
	case keyEOF:
		return 0, ErrEOF
	}
	return res.key, nil
}

func readOne(in io.Reader, ch chan<- readResult) {
	var buf [1]byte
	for {
		n, err := in.Read(buf[:])
		if n > 0 {
			ch <- readResult{key: buf[0]}
			return
		}
		if err != nil {
			ch <- readResult{err: err}
			return
		}
	}
}

// IsTermination reports whether err is one of the sentinel errors that ask
// the caller to stop reading.
func IsTermination(err error) bool {
	return errors.Is(err, ErrInterrupt) || errors.Is(err, ErrEOF)
}
