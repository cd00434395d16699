// Package state persists player settings between sessions.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const (
	dbRelPath    = "tplay/tplay.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager stores settings in a SQLite file. Saves are coalesced so that a
// burst of volume presses costs one write.
type Manager struct {
	db       *sql.DB
	log      *zap.Logger
	debounce time.Duration

	// mu is held across writes so Close never closes the database under a
	// save started by the timer.
	mu      sync.Mutex
	timer   *time.Timer
	pending *Settings
	closed  bool
}

// OpenDefault opens $XDG_DATA_HOME/tplay/tplay.db.
func OpenDefault(log *zap.Logger) (*Manager, error) {
	path, err := xdg.DataFile(dbRelPath)
	if err != nil {
		return nil, fmt.Errorf("locate settings db: %w", err)
	}
	return Open(path, log)
}

// Open opens the database at path, creating the file, its parent
// directories and the schema as needed.
func Open(path string, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Manager{db: db, log: log, debounce: saveDebounce}, nil
}

// SaveSettings schedules s to be written once no newer value arrives
// within the debounce window.
func (m *Manager) SaveSettings(s Settings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}

	m.pending = &s
	if m.timer == nil {
		m.timer = time.AfterFunc(m.debounce, m.flush)
		return
	}
	m.timer.Reset(m.debounce)
}

// Close writes any settings still waiting for the timer, then closes the
// database. Later saves are dropped.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.closed = true
	m.writePending()
	m.mu.Unlock()

	return m.db.Close()
}

func (m *Manager) flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writePending()
}

// writePending saves the latest settings, if any. Callers hold mu.
func (m *Manager) writePending() {
	s := m.pending
	m.pending = nil
	if s == nil {
		return
	}
	if err := saveSettings(m.db, *s); err != nil {
		m.log.Warn("save settings", zap.Error(err))
	}
}
