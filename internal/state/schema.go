package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS feed_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			page_index INTEGER NOT NULL DEFAULT 0,
			source TEXT,
			saved_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS item_views (
			source TEXT PRIMARY KEY,
			views INTEGER NOT NULL DEFAULT 0,
			first_viewed_at INTEGER NOT NULL,
			last_viewed_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_item_views_last ON item_views(last_viewed_at DESC);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
