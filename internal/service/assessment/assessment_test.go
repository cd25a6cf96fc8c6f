package assessment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nidohealth/nido_backend/internal/screening"
)

// fakeStore keeps results in insertion order, like the sqlite store does.
type fakeStore struct {
	results   []screening.Result
	insertErr error
}

func (f *fakeStore) InsertAssessment(_ context.Context, r screening.Result) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.results = append(f.results, r)
	return nil
}

func (f *fakeStore) GetAssessment(_ context.Context, id string) (screening.Result, error) {
	for _, r := range f.results {
		if r.ID == id {
			return r, nil
		}
	}
	return screening.Result{}, errors.New("not found")
}

func (f *fakeStore) ListAssessments(_ context.Context, userID string) ([]screening.Result, error) {
	var out []screening.Result
	for _, r := range f.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestService(store *fakeStore) Service {
	return New(store, screening.DefaultCrisisConfig())
}

func answerAll(t *testing.T, svc Service, userID, sessionID string, i screening.Instrument, value int) {
	t.Helper()
	for _, q := range screening.Questions(i) {
		_, err := svc.Answer(context.Background(), userID, sessionID, q.ID, value)
		require.NoError(t, err)
	}
}

func TestInstruments(t *testing.T) {
	svc := newTestService(&fakeStore{})

	infos := svc.Instruments()
	require.Len(t, infos, 2)

	byInstrument := map[screening.Instrument]InstrumentInfo{}
	for _, info := range infos {
		byInstrument[info.Instrument] = info
	}
	assert.Equal(t, 10, byInstrument[screening.EPDS].QuestionCount)
	assert.Equal(t, 30, byInstrument[screening.EPDS].MaxScore)
	assert.Equal(t, 9, byInstrument[screening.PHQ9].QuestionCount)
	assert.Equal(t, 27, byInstrument[screening.PHQ9].MaxScore)
}

func TestStartAnswerComplete(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	state, err := svc.Start(ctx, "user-1", screening.PHQ9)
	require.NoError(t, err)
	assert.Equal(t, 9, state.QuestionCount)
	assert.Equal(t, 0, state.Answered)
	assert.False(t, state.CanComplete)

	answerAll(t, svc, "user-1", state.ID, screening.PHQ9, 1)

	result, err := svc.Complete(ctx, "user-1", state.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, result.Score)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "Mild", result.Interpretation.SeverityLabel)
	assert.False(t, result.RiskFlag)

	require.Len(t, store.results, 1)
	assert.Equal(t, result.ID, store.results[0].ID)
}

func TestCompleteIsIdempotentInStore(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	state, err := svc.Start(ctx, "user-1", screening.EPDS)
	require.NoError(t, err)
	answerAll(t, svc, "user-1", state.ID, screening.EPDS, 0)

	first, err := svc.Complete(ctx, "user-1", state.ID)
	require.NoError(t, err)
	second, err := svc.Complete(ctx, "user-1", state.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Timestamp, second.Timestamp)
	assert.Len(t, store.results, 1, "repeated complete must not write a duplicate row")
}

func TestCompleteIncomplete(t *testing.T) {
	svc := newTestService(&fakeStore{})
	ctx := context.Background()

	state, err := svc.Start(ctx, "user-1", screening.PHQ9)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, "user-1", state.ID)
	assert.ErrorIs(t, err, screening.ErrIncompleteAssessment)
}

func TestSessionIsolation(t *testing.T) {
	svc := newTestService(&fakeStore{})
	ctx := context.Background()

	state, err := svc.Start(ctx, "user-1", screening.PHQ9)
	require.NoError(t, err)

	// Another user cannot touch the session, and the error does not
	// reveal that the id exists.
	_, err = svc.Answer(ctx, "user-2", state.ID, 1, 0)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Complete(ctx, "user-2", state.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Answer(ctx, "user-1", "no-such-session", 1, 0)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRecommendationsRiskEscalation(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	state, err := svc.Start(ctx, "user-1", screening.PHQ9)
	require.NoError(t, err)
	// All zeros except the self-harm item.
	answerAll(t, svc, "user-1", state.ID, screening.PHQ9, 0)
	_, err = svc.Answer(ctx, "user-1", state.ID, screening.PHQ9.SelfHarmQuestionID(), 1)
	require.NoError(t, err)

	result, err := svc.Complete(ctx, "user-1", state.ID)
	require.NoError(t, err)
	require.True(t, result.RiskFlag)

	recs, err := svc.Recommendations(ctx, "user-1", result.ID)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(recs), 3)

	crisis := screening.DefaultCrisisConfig()
	assert.Contains(t, recs[:3], crisis.Hotlines[0])
	assert.Contains(t, recs[:3], crisis.Hotlines[1])
	assert.Contains(t, recs[:3], crisis.DisclosurePrompt)
}

func TestRecommendationsWrongUser(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	state, err := svc.Start(ctx, "user-1", screening.EPDS)
	require.NoError(t, err)
	answerAll(t, svc, "user-1", state.ID, screening.EPDS, 0)
	result, err := svc.Complete(ctx, "user-1", state.ID)
	require.NoError(t, err)

	_, err = svc.Recommendations(ctx, "user-2", result.ID)
	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestHistoryAndLatest(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	complete := func(i screening.Instrument, value int) screening.Result {
		state, err := svc.Start(ctx, "user-1", i)
		require.NoError(t, err)
		answerAll(t, svc, "user-1", state.ID, i, value)
		r, err := svc.Complete(ctx, "user-1", state.ID)
		require.NoError(t, err)
		return r
	}

	complete(screening.EPDS, 0)
	complete(screening.PHQ9, 1)
	last := complete(screening.PHQ9, 2)

	all, err := svc.History(ctx, "user-1", "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	phq, err := svc.History(ctx, "user-1", screening.PHQ9, 0)
	require.NoError(t, err)
	assert.Len(t, phq, 2)

	one, err := svc.History(ctx, "user-1", "", 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, last.ID, one[0].ID)

	latest, err := svc.Latest(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, last.ID, latest.ID)

	_, err = svc.Latest(ctx, "user-2")
	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestTrend(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	for _, value := range []int{0, 1, 2} {
		state, err := svc.Start(ctx, "user-1", screening.PHQ9)
		require.NoError(t, err)
		answerAll(t, svc, "user-1", state.ID, screening.PHQ9, value)
		_, err = svc.Complete(ctx, "user-1", state.ID)
		require.NoError(t, err)
	}

	points, err := svc.Trend(ctx, "user-1", screening.PHQ9)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, []int{0, 9, 18}, []int{points[0].Score, points[1].Score, points[2].Score})
	for i := 1; i < len(points); i++ {
		assert.False(t, points[i].Timestamp.Before(points[i-1].Timestamp))
	}
}
