package state

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RecordView counts one mount of source and returns the new total.
func (m *Manager) RecordView(source string) (int, error) {
	if source == "" {
		return 0, nil
	}
	var views int
	err := withTx(m.db, func(tx *sql.Tx) error {
		now := time.Now().Unix()
		if _, err := tx.Exec(`
			INSERT INTO item_views (source, views, first_viewed_at, last_viewed_at)
			VALUES (?, 1, ?, ?)
			ON CONFLICT(source) DO UPDATE SET
				views = views + 1,
				last_viewed_at = excluded.last_viewed_at
		`, source, now, now); err != nil {
			return err
		}
		return tx.QueryRow(`SELECT views FROM item_views WHERE source = ?`, source).Scan(&views)
	})
	if err != nil {
		return 0, fmt.Errorf("record view: %w", err)
	}
	return views, nil
}

// Views returns how many times source was shown.
func (m *Manager) Views(source string) (int, error) {
	var views int
	err := m.db.QueryRow(`SELECT views FROM item_views WHERE source = ?`, source).Scan(&views)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return views, nil
}

// withTx runs fn in a transaction, rolling back when it fails.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
