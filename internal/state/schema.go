package state

import "database/sql"

const schemaVersion = 1

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		volume     INTEGER NOT NULL,
		mode       TEXT    NOT NULL DEFAULT 'sequential',
		updated_at INTEGER NOT NULL DEFAULT 0
	)`,
}

// initSchema creates the tables if missing and records the schema version.
// It is safe to run on every open.
func initSchema(db *sql.DB) error {
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	_, err := db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, schemaVersion)
	return err
}
