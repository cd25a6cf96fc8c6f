package screening

import "fmt"

// Session tracks one in-progress questionnaire for a single user. It is
// exclusively owned by one logical caller: the core does no locking and
// assumes single-writer access. Abandoning a session before Complete has
// no side effects; nothing is written until completion.
type Session struct {
	instrument   Instrument
	questions    []Question
	answers      map[int]int
	currentIndex int
	completed    bool
	result       *Result
}

// NewSession starts a session over the instrument's question bank.
func NewSession(i Instrument) *Session {
	s := &Session{}
	s.Start(i)
	return s
}

// Start snapshots the question list and resets all progress. Calling Start
// on an in-progress or completed session discards its state: this is the
// intentional "retake" behavior.
func (s *Session) Start(i Instrument) {
	s.instrument = i
	s.questions = Questions(i)
	s.answers = make(map[int]int, len(s.questions))
	s.currentIndex = 0
	s.completed = false
	s.result = nil
}

func (s *Session) Instrument() Instrument { return s.instrument }

// Questions returns the session's question snapshot, read-only.
func (s *Session) Questions() []Question { return s.questions }

// CurrentIndex is the caller-driven navigation position. Once the session
// is completed the index is frozen and meaningless.
func (s *Session) CurrentIndex() int { return s.currentIndex }

func (s *Session) Completed() bool { return s.completed }

// Answer records the chosen option value for a question. It does not
// advance the navigation index; advancing is the caller's concern.
func (s *Session) Answer(questionID, value int) error {
	if s.completed {
		return ErrSessionCompleted
	}
	q, found := s.question(questionID)
	if !found {
		return fmt.Errorf("%w: question %d is not part of %s", ErrInvalidAnswer, questionID, s.instrument)
	}
	if !q.HasValue(value) {
		return fmt.Errorf("%w: %d is not an option of question %d", ErrInvalidAnswer, value, questionID)
	}
	s.answers[questionID] = value
	return nil
}

// IsAnswered lets callers gate navigation on a question being answered.
func (s *Session) IsAnswered(questionID int) bool {
	_, answered := s.answers[questionID]
	return answered
}

// Answers returns a copy of the captured answer map.
func (s *Session) Answers() map[int]int {
	out := make(map[int]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// CanComplete is true once every question in the snapshot has an answer.
func (s *Session) CanComplete() bool {
	return len(s.answers) == len(s.questions)
}

// Complete runs the scoring pipeline and freezes the session. It is
// idempotent: completing an already-completed session returns the cached
// Result rather than recomputing, so id and timestamp never change.
func (s *Session) Complete(userID string) (Result, error) {
	if s.completed {
		return *s.result, nil
	}
	if !s.CanComplete() {
		return Result{}, fmt.Errorf("%w: %d of %d questions answered",
			ErrIncompleteAssessment, len(s.answers), len(s.questions))
	}
	r, err := BuildResult(userID, s.instrument, s.answers)
	if err != nil {
		return Result{}, err
	}
	s.completed = true
	s.result = &r
	return r, nil
}

// Previous moves the navigation index back one question, clamped at the
// first. No-op once completed.
func (s *Session) Previous() {
	s.GoTo(s.currentIndex - 1)
}

// Next moves the navigation index forward one question, clamped at the last.
func (s *Session) Next() {
	s.GoTo(s.currentIndex + 1)
}

// GoTo jumps the navigation index, clamped to [0, len-1]. No-op once
// completed; the frozen session never mutates again.
func (s *Session) GoTo(index int) {
	if s.completed {
		return
	}
	if index < 0 {
		index = 0
	}
	if max := len(s.questions) - 1; index > max {
		index = max
	}
	s.currentIndex = index
}

func (s *Session) question(id int) (Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
