package screening

import (
	"time"

	"github.com/google/uuid"
)

// Result is the immutable record of a completed assessment. It is built
// exactly once, at session completion, and handed to the caller to persist;
// the core never stores or deletes results itself.
type Result struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Instrument     Instrument     `json:"instrument"`
	Timestamp      time.Time      `json:"timestamp"`
	Score          int            `json:"score"`
	Interpretation Interpretation `json:"interpretation"`
	RiskFlag       bool           `json:"risk_flag"`
	Answers        map[int]int    `json:"answers"`
}

// BuildResult runs the scoring pipeline over a complete answer map:
// score, interpret, risk check, assemble. Its only side effects are id and
// timestamp generation; persisting the result is the caller's job.
func BuildResult(userID string, i Instrument, answers map[int]int) (Result, error) {
	score, err := Score(i, answers)
	if err != nil {
		return Result{}, err
	}

	copied := make(map[int]int, len(answers))
	for k, v := range answers {
		copied[k] = v
	}

	return Result{
		ID:             uuid.NewString(),
		UserID:         userID,
		Instrument:     i,
		Timestamp:      time.Now().UTC(),
		Score:          score,
		Interpretation: Interpret(i, score),
		RiskFlag:       SelfHarmRisk(i, answers),
		Answers:        copied,
	}, nil
}
