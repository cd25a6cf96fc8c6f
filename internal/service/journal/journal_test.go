package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nidohealth/nido_backend/internal/repo"
)

type fakeStore struct {
	entries []repo.JournalEntry
}

func (f *fakeStore) InsertJournalEntry(_ context.Context, e repo.JournalEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeStore) ListJournalEntries(_ context.Context, userID string, since time.Time) ([]repo.JournalEntry, error) {
	var out []repo.JournalEntry
	for _, e := range f.entries {
		if e.UserID == userID && !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestCreate(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	e, err := svc.Create(context.Background(), "user-1", CreateRequest{Mood: 4, Note: "slept well"})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "user-1", e.UserID)
	assert.Equal(t, 4, e.Mood)
	assert.False(t, e.CreatedAt.IsZero())
	assert.Len(t, store.entries, 1)
}

func TestCreateInvalidMood(t *testing.T) {
	svc := New(&fakeStore{})

	for _, mood := range []int{0, -1, 6} {
		_, err := svc.Create(context.Background(), "user-1", CreateRequest{Mood: mood})
		assert.ErrorIs(t, err, ErrInvalidMood, "mood %d", mood)
	}
}

func TestSummary(t *testing.T) {
	// Anchor at midday so hour offsets never cross a day boundary.
	base := time.Now().UTC().Truncate(24 * time.Hour).Add(12 * time.Hour)
	store := &fakeStore{entries: []repo.JournalEntry{
		{ID: "a", UserID: "user-1", Mood: 2, CreatedAt: base.AddDate(0, 0, -1)},
		{ID: "b", UserID: "user-1", Mood: 4, CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "c", UserID: "user-1", Mood: 5, CreatedAt: base.Add(-1 * time.Hour)},
		{ID: "d", UserID: "user-2", Mood: 1, CreatedAt: base},
	}}
	svc := New(store)

	summary, err := svc.Summary(context.Background(), "user-1", 7)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.Days)
	assert.Equal(t, 3, summary.Entries)
	assert.InDelta(t, 11.0/3.0, summary.AverageMood, 1e-9)
	require.Len(t, summary.PerDay, 2)
	// Days come back sorted ascending by date.
	assert.Less(t, summary.PerDay[0].Date, summary.PerDay[1].Date)
	assert.Equal(t, 1, summary.PerDay[0].Entries)
	assert.Equal(t, 2, summary.PerDay[1].Entries)
	assert.InDelta(t, 4.5, summary.PerDay[1].AverageMood, 1e-9)
}

func TestSummaryEmpty(t *testing.T) {
	svc := New(&fakeStore{})

	summary, err := svc.Summary(context.Background(), "user-1", 7)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Entries)
	assert.Zero(t, summary.AverageMood)
	assert.Empty(t, summary.PerDay)
}
