//go:build !windows

// Package stderr captures output that C audio backends (ALSA, oto) write
// straight to file descriptor 2, bypassing os.Stderr. Captured lines go to
// the log so they cannot corrupt the player frame.
package stderr

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// capture is one active redirection of fd 2.
type capture struct {
	saved int // duplicate of the terminal's fd 2
	r, w  *os.File
	done  chan struct{}
}

var (
	mu     sync.Mutex
	active *capture
)

// Start points fd 2 at a pipe whose non-blank lines are logged as
// warnings. Call it before opening the audio device. A second Start while
// capturing is a no-op; on error nothing is redirected.
func Start(log *zap.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if active != nil {
		return nil
	}

	c, err := redirect(int(os.Stderr.Fd()))
	if err != nil {
		return err
	}
	active = c
	go c.forward(log)
	return nil
}

func redirect(fd int) (*capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	saved, err := unix.Dup(fd)
	if err == nil {
		err = unix.Dup2(int(w.Fd()), fd)
		if err != nil {
			_ = unix.Close(saved)
		}
	}
	if err != nil {
		return nil, errors.Join(err, r.Close(), w.Close())
	}
	return &capture{saved: saved, r: r, w: w, done: make(chan struct{})}, nil
}

func (c *capture) forward(log *zap.Logger) {
	defer close(c.done)
	sc := bufio.NewScanner(c.r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			log.Warn("captured stderr", zap.String("line", line))
		}
	}
}

// WriteOriginal writes msg to the terminal's stderr even while capturing.
func WriteOriginal(msg string) {
	mu.Lock()
	c := active
	mu.Unlock()

	if c == nil {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = unix.Write(c.saved, []byte(msg))
}

// Stop puts the terminal back on fd 2 and waits until every captured line
// has been logged.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	c := active
	if c == nil {
		return
	}
	active = nil

	_ = unix.Dup2(c.saved, int(os.Stderr.Fd()))
	_ = unix.Close(c.saved)
	// With fd 2 restored, closing the write end is the last writer gone.
	_ = c.w.Close()
	<-c.done
	_ = c.r.Close()
}
