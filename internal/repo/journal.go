package repo

import (
	"context"
	"fmt"
	"time"
)

// JournalEntry is one mood journal record. The journal is an append-only
// log; aggregation lives in the journal service.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Mood      int       `json:"mood"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Client) InsertJournalEntry(ctx context.Context, e JournalEntry) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO journal_entries (id, user_id, mood, note, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Mood, e.Note, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// ListJournalEntries returns a user's entries since the given instant,
// newest first. A zero since returns the full log.
func (c *Client) ListJournalEntries(ctx context.Context, userID string, since time.Time) ([]JournalEntry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, user_id, mood, note, created_at
		FROM journal_entries
		WHERE user_id = ? AND created_at >= ?
		ORDER BY created_at DESC, rowid DESC`, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var out []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Mood, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
