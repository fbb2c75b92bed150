package state

import (
	"database/sql"
	"errors"
	"time"
)

// FeedState is the last viewed position in the feed.
type FeedState struct {
	PageIndex int
	Source    string // source of the page, used to detect a changed feed
	SavedAt   time.Time
}

func getFeed(db *sql.DB) (*FeedState, error) {
	row := db.QueryRow(`SELECT page_index, source, saved_at FROM feed_state WHERE id = 1`)

	var state FeedState
	var source sql.NullString
	var savedAt int64

	err := row.Scan(&state.PageIndex, &source, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.Source = nullStringValue(source)
	state.SavedAt = time.Unix(savedAt, 0)
	return &state, nil
}

func saveFeed(db *sql.DB, state FeedState) error {
	savedAt := state.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	_, err := db.Exec(`
		INSERT INTO feed_state (id, page_index, source, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			page_index = excluded.page_index,
			source = excluded.source,
			saved_at = excluded.saved_at
	`, state.PageIndex, state.Source, savedAt.Unix())
	return err
}

func nullStringValue(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}
