package journal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nidohealth/nido_backend/internal/repo"
)

// Store is the append/query surface of the mood journal log.
type Store interface {
	InsertJournalEntry(ctx context.Context, e repo.JournalEntry) error
	ListJournalEntries(ctx context.Context, userID string, since time.Time) ([]repo.JournalEntry, error)
}

type CreateRequest struct {
	Mood int
	Note string
}

// DaySummary aggregates one calendar day of entries.
type DaySummary struct {
	Date        string  `json:"date"`
	AverageMood float64 `json:"average_mood"`
	Entries     int     `json:"entries"`
}

type Summary struct {
	Days        int          `json:"days"`
	Entries     int          `json:"entries"`
	AverageMood float64      `json:"average_mood"`
	PerDay      []DaySummary `json:"per_day"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, userID string, req CreateRequest) (repo.JournalEntry, error)
	List(ctx context.Context, userID string, days int) ([]repo.JournalEntry, error)
	Summary(ctx context.Context, userID string, days int) (Summary, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	store Store
}

func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, userID string, req CreateRequest) (repo.JournalEntry, error) {
	if req.Mood < 1 || req.Mood > 5 {
		return repo.JournalEntry{}, ErrInvalidMood
	}
	e := repo.JournalEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mood:      req.Mood,
		Note:      req.Note,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.InsertJournalEntry(ctx, e); err != nil {
		return repo.JournalEntry{}, fmt.Errorf("create journal entry: %w", err)
	}
	return e, nil
}

func (s *service) List(ctx context.Context, userID string, days int) ([]repo.JournalEntry, error) {
	return s.store.ListJournalEntries(ctx, userID, sinceDays(days))
}

func (s *service) Summary(ctx context.Context, userID string, days int) (Summary, error) {
	entries, err := s.store.ListJournalEntries(ctx, userID, sinceDays(days))
	if err != nil {
		return Summary{}, fmt.Errorf("load journal entries: %w", err)
	}

	summary := Summary{Days: days, Entries: len(entries)}
	if len(entries) == 0 {
		return summary, nil
	}

	type bucket struct {
		total   int
		entries int
	}
	perDay := map[string]*bucket{}
	total := 0
	for _, e := range entries {
		total += e.Mood
		day := e.CreatedAt.UTC().Format("2006-01-02")
		b, found := perDay[day]
		if !found {
			b = &bucket{}
			perDay[day] = b
		}
		b.total += e.Mood
		b.entries++
	}
	summary.AverageMood = float64(total) / float64(len(entries))

	for day, b := range perDay {
		summary.PerDay = append(summary.PerDay, DaySummary{
			Date:        day,
			AverageMood: float64(b.total) / float64(b.entries),
			Entries:     b.entries,
		})
	}
	sort.Slice(summary.PerDay, func(a, b int) bool {
		return summary.PerDay[a].Date < summary.PerDay[b].Date
	})
	return summary, nil
}

func sinceDays(days int) time.Time {
	if days <= 0 {
		return time.Time{}
	}
	return time.Now().UTC().AddDate(0, 0, -days)
}
