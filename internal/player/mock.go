package player

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

// Mock is a test double for the audio engine.
type Mock struct {
	state     State
	finished  bool
	level     int
	duration  time.Duration
	position  float64
	openErrs  map[string]error
	openCalls []string
	seekCalls []float64
	seekErr   error
	stops     int
	closed    bool
}

// NewMock creates a new mock engine at full volume.
func NewMock() *Mock {
	return &Mock{
		state:    Stopped,
		level:    MaxVolume,
		openErrs: make(map[string]error),
	}
}

func (m *Mock) Open(path string) error {
	m.Stop()
	m.openCalls = append(m.openCalls, path)
	if err, ok := m.openErrs[path]; ok {
		return err
	}
	m.state = Playing
	m.finished = false
	m.position = 0
	return nil
}

func (m *Mock) Stop() {
	if m.state == Stopped {
		return
	}
	m.stops++
	m.state = Stopped
}

func (m *Mock) Pause() {
	if m.state.CanPause() {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state.CanResume() {
		m.state = Playing
	}
}

func (m *Mock) IsPlaying() bool { return m.state.IsActive() && !m.finished }

func (m *Mock) SetPosition(seconds float64) error {
	m.seekCalls = append(m.seekCalls, seconds)
	if m.seekErr != nil {
		return m.seekErr
	}
	m.position = seconds
	return nil
}

func (m *Mock) Volume() int { return m.level }

func (m *Mock) SetVolume(level int) { m.level = lo.Clamp(level, 0, MaxVolume) }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) Close() error {
	m.Stop()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) State() State { return m.state }

// FailOpen makes Open return an error for path.
func (m *Mock) FailOpen(path string) {
	m.openErrs[path] = fmt.Errorf("decode %s: invalid frame header", path)
}

func (m *Mock) SetSeekError(err error) { m.seekErr = err }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) OpenCalls() []string { return m.openCalls }

func (m *Mock) SeekCalls() []float64 { return m.seekCalls }

func (m *Mock) Position() float64 { return m.position }

func (m *Mock) Stops() int { return m.stops }

func (m *Mock) Closed() bool { return m.closed }

// SimulateFinished simulates the current track reaching its end.
func (m *Mock) SimulateFinished() {
	if m.state.IsActive() {
		m.finished = true
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
