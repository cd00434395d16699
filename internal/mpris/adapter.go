// Package mpris exposes the player on the session bus so media keys and
// desktop widgets can control it.
package mpris

import (
	"sync"

	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/keymap"
	"github.com/llehouerou/tplay/internal/playback"
)

const actionBuffer = 16

// Adapter turns bus calls into actions for the controller and answers
// property reads from the last rendered frame.
type Adapter struct {
	log     *zap.Logger
	actions chan keymap.Action

	mu     sync.RWMutex
	frame  playback.Frame
	loaded bool

	stop func() error
}

func newAdapter(log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		log:     log,
		actions: make(chan keymap.Action, actionBuffer),
	}
}

// Render records the frame for later property reads.
func (a *Adapter) Render(f playback.Frame) {
	a.mu.Lock()
	a.frame = f
	a.loaded = true
	a.mu.Unlock()
}

// PollAction returns the oldest pending action without blocking.
func (a *Adapter) PollAction() (keymap.Action, bool) {
	select {
	case action := <-a.actions:
		return action, true
	default:
		return "", false
	}
}

// Close stops serving on the bus.
func (a *Adapter) Close() error {
	if a.stop == nil {
		return nil
	}
	return a.stop()
}

func (a *Adapter) send(action keymap.Action) {
	select {
	case a.actions <- action:
	default:
		a.log.Debug("mpris action dropped", zap.String("action", string(action)))
	}
}

func (a *Adapter) snapshot() (playback.Frame, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frame, a.loaded
}

// cycleTo queues the mode cycles needed to reach target.
func (a *Adapter) cycleTo(target playback.Mode) {
	f, ok := a.snapshot()
	if !ok {
		return
	}
	for m := f.Mode; m != target; m = m.Next() {
		a.send(keymap.ActionCycleMode)
	}
}

// setPaused queues a pause toggle when the player is not already in the
// wanted state.
func (a *Adapter) setPaused(paused bool) {
	f, ok := a.snapshot()
	if !ok || f.Paused == paused {
		return
	}
	a.send(keymap.ActionTogglePause)
}

var (
	_ playback.Renderer     = (*Adapter)(nil)
	_ playback.ActionSource = (*Adapter)(nil)
)
