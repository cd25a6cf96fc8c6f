// Package repo is the hand-written SQLite persistence layer. Services own
// all writes; the screening core never touches the database.
package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

type Client struct {
	db *sql.DB
}

func New(db *sql.DB) *Client {
	return &Client{db: db}
}

func (c *Client) Close() error {
	return c.db.Close()
}

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(b), nil
}
