package state

import (
	"database/sql"
	"errors"
)

// Settings are what a session remembers for the next one. Mode is the
// playback mode name as accepted by the config file.
type Settings struct {
	Volume int
	Mode   string
}

const (
	selectSettings = `SELECT volume, mode FROM settings WHERE id = 1`
	upsertSettings = `INSERT INTO settings (id, volume, mode, updated_at)
		VALUES (1, ?, ?, unixepoch())
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			mode = excluded.mode,
			updated_at = excluded.updated_at`
)

// LoadSettings returns nil and no error when nothing was saved yet.
func (m *Manager) LoadSettings() (*Settings, error) {
	return getSettings(m.db)
}

func getSettings(db *sql.DB) (*Settings, error) {
	s := new(Settings)
	switch err := db.QueryRow(selectSettings).Scan(&s.Volume, &s.Mode); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil //nolint:nilnil // nothing saved yet
	case err != nil:
		return nil, err
	}
	return s, nil
}

func saveSettings(db *sql.DB, s Settings) error {
	_, err := db.Exec(upsertSettings, s.Volume, s.Mode)
	return err
}
