package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nidohealth/nido_backend/internal/screening"
)

// ErrNotFound is returned when a queried row does not exist.
var ErrNotFound = errors.New("record not found")

// InsertAssessment appends a completed assessment result. Results are
// append-only; nothing in this layer updates or deletes them.
func (c *Client) InsertAssessment(ctx context.Context, r screening.Result) error {
	answers, err := encodeJSON(r.Answers)
	if err != nil {
		return err
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO assessment_results
			(id, user_id, instrument, taken_at, score, severity_label, description, color, risk_flag, answers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserID, string(r.Instrument), r.Timestamp, r.Score,
		r.Interpretation.SeverityLabel, r.Interpretation.Description,
		string(r.Interpretation.Color), boolToInt(r.RiskFlag), answers,
	)
	if err != nil {
		return fmt.Errorf("insert assessment result: %w", err)
	}
	return nil
}

// GetAssessment loads one result by id.
func (c *Client) GetAssessment(ctx context.Context, id string) (screening.Result, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, user_id, instrument, taken_at, score, severity_label, description, color, risk_flag, answers
		FROM assessment_results WHERE id = ?`, id)

	r, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return screening.Result{}, ErrNotFound
	}
	if err != nil {
		return screening.Result{}, fmt.Errorf("get assessment result: %w", err)
	}
	return r, nil
}

// ListAssessments returns all results of one user in insertion order.
// Filtering and trend views happen in the screening package over this list.
func (c *Client) ListAssessments(ctx context.Context, userID string) ([]screening.Result, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, user_id, instrument, taken_at, score, severity_label, description, color, risk_flag, answers
		FROM assessment_results WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, fmt.Errorf("list assessment results: %w", err)
	}
	defer rows.Close()

	var out []screening.Result
	for rows.Next() {
		r, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (screening.Result, error) {
	var (
		r          screening.Result
		instrument string
		color      string
		riskFlag   int64
		answers    string
	)
	err := row.Scan(&r.ID, &r.UserID, &instrument, &r.Timestamp, &r.Score,
		&r.Interpretation.SeverityLabel, &r.Interpretation.Description,
		&color, &riskFlag, &answers)
	if err != nil {
		return screening.Result{}, err
	}
	r.Instrument = screening.Instrument(instrument)
	r.Interpretation.Color = screening.ColorTag(color)
	r.RiskFlag = riskFlag != 0
	if err := json.Unmarshal([]byte(answers), &r.Answers); err != nil {
		return screening.Result{}, fmt.Errorf("decode answers: %w", err)
	}
	return r, nil
}

func boolToInt(v bool) int64 {
	if v {
		return 1
	}
	return 0
}
