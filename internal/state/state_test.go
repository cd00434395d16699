package state

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func TestGetSettings_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s, err := getSettings(db)
	if err != nil {
		t.Fatalf("getSettings failed: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil settings on empty db, got %+v", s)
	}
}

func TestSaveAndGetSettings(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := saveSettings(db, Settings{Volume: 64, Mode: "random"}); err != nil {
		t.Fatalf("saveSettings failed: %v", err)
	}

	s, err := getSettings(db)
	if err != nil {
		t.Fatalf("getSettings failed: %v", err)
	}
	if s == nil {
		t.Fatal("expected settings, got nil")
	}
	if s.Volume != 64 || s.Mode != "random" {
		t.Errorf("got %+v, want {64 random}", *s)
	}
}

func TestSaveSettings_Overwrites(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := saveSettings(db, Settings{Volume: 10, Mode: "loop"}); err != nil {
		t.Fatal(err)
	}
	if err := saveSettings(db, Settings{Volume: 128, Mode: "sequential"}); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	s, err := getSettings(db)
	if err != nil {
		t.Fatal(err)
	}
	if s.Volume != 128 || s.Mode != "sequential" {
		t.Errorf("got %+v, want {128 sequential}", *s)
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := initSchema(db); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}
}

func TestManager_CloseFlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tplay.db")

	m, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	m.debounce = time.Hour

	m.SaveSettings(Settings{Volume: 1, Mode: "loop"})
	m.SaveSettings(Settings{Volume: 96, Mode: "random"})

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m, err = Open(path, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	s, err := m.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s == nil || s.Volume != 96 || s.Mode != "random" {
		t.Errorf("got %+v, want latest settings {96 random}", s)
	}
}

func TestManager_DebouncedSave(t *testing.T) {
	m, err := Open(filepath.Join(t.TempDir(), "tplay.db"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer m.Close()
	m.debounce = 10 * time.Millisecond

	m.SaveSettings(Settings{Volume: 42, Mode: "sequential"})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s, err := m.LoadSettings()
		if err != nil {
			t.Fatal(err)
		}
		if s != nil {
			if s.Volume != 42 {
				t.Errorf("Volume = %d, want 42", s.Volume)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("settings were not written after the debounce window")
}

func TestManager_CloseRacingTimerKeepsLatest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tplay.db")

	for i := range 20 {
		m, err := Open(path, nil)
		require.NoError(t, err)
		m.debounce = time.Microsecond

		m.SaveSettings(Settings{Volume: i, Mode: "loop"})
		time.Sleep(time.Duration(i) * 50 * time.Microsecond)
		require.NoError(t, m.Close())
		m.SaveSettings(Settings{Volume: 999, Mode: "loop"})

		m, err = Open(path, nil)
		require.NoError(t, err)
		s, err := m.LoadSettings()
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, i, s.Volume)
		require.NoError(t, m.Close())
	}
}

func TestMock(t *testing.T) {
	m := NewMock()

	s, err := m.LoadSettings()
	if err != nil || s != nil {
		t.Fatalf("empty mock LoadSettings() = %v, %v", s, err)
	}

	m.SaveSettings(Settings{Volume: 5, Mode: "loop"})
	s, _ = m.LoadSettings()
	if s == nil || s.Volume != 5 {
		t.Errorf("LoadSettings() after save = %+v", s)
	}
	if len(m.Saves()) != 1 {
		t.Errorf("Saves() = %d, want 1", len(m.Saves()))
	}
	_ = m.Close()
	if !m.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
}
