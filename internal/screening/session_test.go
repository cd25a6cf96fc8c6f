package screening

import (
	"errors"
	"testing"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(PHQ9)

	if s.Completed() {
		t.Fatal("new session reports completed")
	}
	if s.CanComplete() {
		t.Fatal("new session reports CanComplete")
	}
	if _, err := s.Complete("user-1"); !errors.Is(err, ErrIncompleteAssessment) {
		t.Fatalf("Complete() on empty session error = %v, want ErrIncompleteAssessment", err)
	}

	for _, q := range s.Questions() {
		if s.IsAnswered(q.ID) {
			t.Fatalf("question %d answered before Answer()", q.ID)
		}
		if err := s.Answer(q.ID, 3); err != nil {
			t.Fatalf("Answer(%d, 3) error = %v", q.ID, err)
		}
		if !s.IsAnswered(q.ID) {
			t.Fatalf("question %d not answered after Answer()", q.ID)
		}
	}

	if !s.CanComplete() {
		t.Fatal("CanComplete() = false with all questions answered")
	}

	r, err := s.Complete("user-1")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if r.Score != 27 {
		t.Errorf("score = %d, want 27", r.Score)
	}
	if r.Interpretation.SeverityLabel != "Severe" || r.Interpretation.Color != ColorRed {
		t.Errorf("interpretation = %q/%s, want Severe/red", r.Interpretation.SeverityLabel, r.Interpretation.Color)
	}
	if !r.RiskFlag {
		t.Error("risk flag = false with self-harm item at 3")
	}
	if r.UserID != "user-1" || r.ID == "" || r.Timestamp.IsZero() {
		t.Errorf("result metadata incomplete: %+v", r)
	}
}

func TestSessionCompleteIsIdempotent(t *testing.T) {
	s := NewSession(EPDS)
	for _, q := range s.Questions() {
		if err := s.Answer(q.ID, 0); err != nil {
			t.Fatalf("Answer() error = %v", err)
		}
	}

	first, err := s.Complete("user-2")
	if err != nil {
		t.Fatalf("first Complete() error = %v", err)
	}
	second, err := s.Complete("user-2")
	if err != nil {
		t.Fatalf("second Complete() error = %v", err)
	}

	if first.ID != second.ID || !first.Timestamp.Equal(second.Timestamp) || first.Score != second.Score {
		t.Errorf("Complete() not idempotent: %+v vs %+v", first, second)
	}
}

func TestSessionRejectsInvalidAnswers(t *testing.T) {
	s := NewSession(EPDS)

	// value outside the question's option set leaves state unchanged
	if err := s.Answer(1, 5); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("Answer(1, 5) error = %v, want ErrInvalidAnswer", err)
	}
	if s.IsAnswered(1) {
		t.Error("question 1 marked answered after rejected value")
	}

	// question id outside the snapshot
	if err := s.Answer(42, 0); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("Answer(42, 0) error = %v, want ErrInvalidAnswer", err)
	}
	if len(s.Answers()) != 0 {
		t.Errorf("answers recorded after rejections: %v", s.Answers())
	}
}

func TestSessionFrozenAfterCompletion(t *testing.T) {
	s := NewSession(PHQ9)
	for _, q := range s.Questions() {
		if err := s.Answer(q.ID, 1); err != nil {
			t.Fatalf("Answer() error = %v", err)
		}
	}
	s.GoTo(4)
	if _, err := s.Complete("user-3"); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if err := s.Answer(1, 2); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("Answer() after completion error = %v, want ErrSessionCompleted", err)
	}
	s.GoTo(0)
	s.Previous()
	if s.CurrentIndex() != 4 {
		t.Errorf("navigation moved a completed session, index = %d", s.CurrentIndex())
	}
}

func TestSessionNavigationClamps(t *testing.T) {
	s := NewSession(EPDS)

	s.Previous()
	if s.CurrentIndex() != 0 {
		t.Errorf("Previous() below zero, index = %d", s.CurrentIndex())
	}
	s.GoTo(99)
	if s.CurrentIndex() != 9 {
		t.Errorf("GoTo(99) index = %d, want 9", s.CurrentIndex())
	}
	s.Next()
	if s.CurrentIndex() != 9 {
		t.Errorf("Next() past last question, index = %d", s.CurrentIndex())
	}
	s.GoTo(-3)
	if s.CurrentIndex() != 0 {
		t.Errorf("GoTo(-3) index = %d, want 0", s.CurrentIndex())
	}
}

func TestSessionRestartDiscardsProgress(t *testing.T) {
	s := NewSession(EPDS)
	if err := s.Answer(1, 2); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	s.GoTo(5)

	s.Start(PHQ9)

	if s.Instrument() != PHQ9 {
		t.Errorf("instrument = %s after restart, want phq9", s.Instrument())
	}
	if len(s.Answers()) != 0 || s.CurrentIndex() != 0 || s.Completed() {
		t.Error("restart did not reset session state")
	}
}
