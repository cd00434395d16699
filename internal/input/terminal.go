// Package input reads single key presses without blocking the frame loop.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// Terminal reads raw bytes from a terminal. A goroutine blocks on the read
// and hands each byte over an unbuffered channel; PollKey never waits.
type Terminal struct {
	fd       int
	oldState *term.State
	reader   cancelreader.CancelReader
	keys     chan byte
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// Open puts in into raw mode (no echo, no line buffering) and starts
// reading. When in is not a terminal raw mode is skipped.
func Open(in *os.File) (*Terminal, error) {
	fd := int(in.Fd()) //nolint:gosec // file descriptors fit in int
	var oldState *term.State
	if term.IsTerminal(fd) {
		st, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("raw mode: %w", err)
		}
		oldState = st
	}

	t, err := newTerminal(in)
	if err != nil {
		if oldState != nil {
			_ = term.Restore(fd, oldState)
		}
		return nil, err
	}
	t.fd = fd
	t.oldState = oldState
	return t, nil
}

func newTerminal(r io.Reader) (*Terminal, error) {
	cr, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("input reader: %w", err)
	}
	t := &Terminal{
		reader: cr,
		keys:   make(chan byte),
		done:   make(chan struct{}),
	}
	t.wg.Add(1)
	go t.readLoop()
	return t, nil
}

func (t *Terminal) readLoop() {
	defer t.wg.Done()
	buf := make([]byte, 1)
	for {
		n, err := t.reader.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		select {
		case t.keys <- buf[0]:
		case <-t.done:
			return
		}
	}
}

// PollKey returns the next key if one is waiting.
func (t *Terminal) PollKey() (byte, bool) {
	select {
	case k := <-t.keys:
		return k, true
	default:
		return 0, false
	}
}

// Close stops the reader and restores the terminal mode.
func (t *Terminal) Close() error {
	var errs []error
	t.once.Do(func() {
		close(t.done)
		t.reader.Cancel()
		t.wg.Wait()
		if err := t.reader.Close(); err != nil {
			errs = append(errs, err)
		}
		if t.oldState != nil {
			if err := term.Restore(t.fd, t.oldState); err != nil {
				errs = append(errs, fmt.Errorf("restore terminal: %w", err))
			}
		}
	})
	return errors.Join(errs...)
}
