package assessment

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/nidohealth/nido_backend/internal/screening"
)

// Store is the persistence surface the service needs. Results are append-only:
// the service writes each result exactly once and only ever reads after that.
type Store interface {
	InsertAssessment(ctx context.Context, r screening.Result) error
	GetAssessment(ctx context.Context, id string) (screening.Result, error)
	ListAssessments(ctx context.Context, userID string) ([]screening.Result, error)
}

// InstrumentInfo describes one available instrument to API clients.
type InstrumentInfo struct {
	Instrument    screening.Instrument `json:"instrument"`
	Name          string               `json:"name"`
	QuestionCount int                  `json:"question_count"`
	MaxScore      int                  `json:"max_score"`
}

// SessionState is the progress view returned after session operations.
type SessionState struct {
	ID            string               `json:"id"`
	Instrument    screening.Instrument `json:"instrument"`
	QuestionCount int                  `json:"question_count"`
	Answered      int                  `json:"answered"`
	CanComplete   bool                 `json:"can_complete"`
	Completed     bool                 `json:"completed"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Instruments() []InstrumentInfo
	Questions(i screening.Instrument) []screening.Question
	Start(ctx context.Context, userID string, i screening.Instrument) (SessionState, error)
	Answer(ctx context.Context, userID, sessionID string, questionID, value int) (SessionState, error)
	Complete(ctx context.Context, userID, sessionID string) (screening.Result, error)
	Recommendations(ctx context.Context, userID, resultID string) ([]string, error)
	History(ctx context.Context, userID string, i screening.Instrument, lastN int) ([]screening.Result, error)
	Latest(ctx context.Context, userID string) (screening.Result, error)
	Trend(ctx context.Context, userID string, i screening.Instrument) ([]screening.TrendPoint, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type liveSession struct {
	userID string
	sess   *screening.Session
}

type service struct {
	store  Store
	crisis screening.CrisisConfig

	// mu guards the registry map and serializes session mutation for
	// concurrent HTTP calls. Each session still belongs to exactly one
	// user; the lock exists for the registry, not for shared sessions.
	mu       sync.Mutex
	sessions map[string]*liveSession
}

func New(store Store, crisis screening.CrisisConfig) Service {
	return &service{
		store:    store,
		crisis:   crisis,
		sessions: make(map[string]*liveSession),
	}
}

func (s *service) Instruments() []InstrumentInfo {
	instruments := screening.Instruments()
	out := make([]InstrumentInfo, 0, len(instruments))
	for _, i := range instruments {
		out = append(out, InstrumentInfo{
			Instrument:    i,
			Name:          i.DisplayName(),
			QuestionCount: len(screening.Questions(i)),
			MaxScore:      i.MaxScore(),
		})
	}
	return out
}

func (s *service) Questions(i screening.Instrument) []screening.Question {
	return screening.Questions(i)
}

func (s *service) Start(ctx context.Context, userID string, i screening.Instrument) (SessionState, error) {
	ls := &liveSession{userID: userID, sess: screening.NewSession(i)}
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = ls
	s.mu.Unlock()

	return s.state(id, ls), nil
}

func (s *service) Answer(ctx context.Context, userID, sessionID string, questionID, value int) (SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ls, err := s.lookup(userID, sessionID)
	if err != nil {
		return SessionState{}, err
	}
	if err := ls.sess.Answer(questionID, value); err != nil {
		return SessionState{}, err
	}
	return s.state(sessionID, ls), nil
}

func (s *service) Complete(ctx context.Context, userID, sessionID string) (screening.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ls, err := s.lookup(userID, sessionID)
	if err != nil {
		return screening.Result{}, err
	}

	alreadyDone := ls.sess.Completed()
	r, err := ls.sess.Complete(userID)
	if err != nil {
		return screening.Result{}, err
	}

	// Persist exactly once; a repeated complete call returns the cached
	// result without writing a duplicate row.
	if !alreadyDone {
		if err := s.store.InsertAssessment(ctx, r); err != nil {
			return screening.Result{}, fmt.Errorf("persist assessment result: %w", err)
		}
	}
	return r, nil
}

func (s *service) Recommendations(ctx context.Context, userID, resultID string) ([]string, error) {
	r, err := s.store.GetAssessment(ctx, resultID)
	if err != nil {
		return nil, ErrResultNotFound
	}
	if r.UserID != userID {
		return nil, ErrResultNotFound
	}
	return screening.Recommend(r.Instrument, r.Score, r.Interpretation, r.RiskFlag, s.crisis), nil
}

func (s *service) History(ctx context.Context, userID string, i screening.Instrument, lastN int) ([]screening.Result, error) {
	results, err := s.store.ListAssessments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load assessment history: %w", err)
	}
	filtered := screening.FilterByInstrument(results, i)
	if lastN <= 0 {
		lastN = len(filtered)
	}
	return screening.LastN(filtered, lastN), nil
}

func (s *service) Latest(ctx context.Context, userID string) (screening.Result, error) {
	results, err := s.store.ListAssessments(ctx, userID)
	if err != nil {
		return screening.Result{}, fmt.Errorf("load assessment history: %w", err)
	}
	latest, found := screening.Latest(results)
	if !found {
		return screening.Result{}, ErrResultNotFound
	}
	return latest, nil
}

func (s *service) Trend(ctx context.Context, userID string, i screening.Instrument) ([]screening.TrendPoint, error) {
	results, err := s.store.ListAssessments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load assessment history: %w", err)
	}
	return screening.SeverityOverTime(screening.FilterByInstrument(results, i)), nil
}

// lookup must be called with mu held. Sessions of other users are reported
// as missing, never as forbidden, to avoid leaking session ids.
func (s *service) lookup(userID, sessionID string) (*liveSession, error) {
	ls, found := s.sessions[sessionID]
	if !found || ls.userID != userID {
		return nil, ErrSessionNotFound
	}
	return ls, nil
}

func (s *service) state(id string, ls *liveSession) SessionState {
	return SessionState{
		ID:            id,
		Instrument:    ls.sess.Instrument(),
		QuestionCount: len(ls.sess.Questions()),
		Answered:      len(ls.sess.Answers()),
		CanComplete:   ls.sess.CanComplete(),
		Completed:     ls.sess.Completed(),
	}
}
