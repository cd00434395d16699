package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu       sync.Mutex
	settings *Settings
	saves    []Settings
	loadErr  error
	closed   bool
}

// NewMock creates a new mock settings store for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) LoadSettings() (*Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.settings == nil {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	s := *m.settings
	return &s, nil
}

func (m *Mock) SaveSettings(s Settings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves = append(m.saves, s)
	m.settings = &s
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSettings(s *Settings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
}

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) Saves() []Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Settings(nil), m.saves...)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
