// Package resource serves the static support resource catalogue. The
// catalogue is read-only, process-wide data; list responses are cached in
// Redis so repeated browsing never re-filters on hot paths.
package resource

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Phone       string `json:"phone,omitempty"`
	URL         string `json:"url,omitempty"`
	Crisis      bool   `json:"crisis"`
}

const (
	CategoryCrisis      = "crisis"
	CategoryCounseling  = "counseling"
	CategoryPeerSupport = "peer_support"
	CategorySelfCare    = "self_care"
	CategoryMedical     = "medical"
)

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, category, query string) ([]Resource, error)
	Crisis(ctx context.Context) ([]Resource, error)
	Categories() []string
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	rdb      *redis.Client
	cacheTTL time.Duration
}

// New builds the catalogue service. rdb may be nil (tests, cache disabled);
// filtering then runs uncached.
func New(rdb *redis.Client) Service {
	return &service{rdb: rdb, cacheTTL: 10 * time.Minute}
}

func (s *service) Categories() []string {
	return []string{CategoryCrisis, CategoryCounseling, CategoryPeerSupport, CategorySelfCare, CategoryMedical}
}

func (s *service) List(ctx context.Context, category, query string) ([]Resource, error) {
	cacheKey := "resources:" + category + ":" + strings.ToLower(query)
	if cached, found := s.fromCache(ctx, cacheKey); found {
		return cached, nil
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Resource, 0, len(catalogue))
	for _, r := range catalogue {
		if category != "" && r.Category != category {
			continue
		}
		if q != "" && !matches(r, q) {
			continue
		}
		out = append(out, r)
	}

	s.toCache(ctx, cacheKey, out)
	return out, nil
}

func (s *service) Crisis(ctx context.Context) ([]Resource, error) {
	out := make([]Resource, 0, 2)
	for _, r := range catalogue {
		if r.Crisis {
			out = append(out, r)
		}
	}
	return out, nil
}

func matches(r Resource, q string) bool {
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}

func (s *service) fromCache(ctx context.Context, key string) ([]Resource, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var out []Resource
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (s *service) toCache(ctx context.Context, key string, resources []Resource) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(resources)
	if err != nil {
		return
	}
	// cache failures are invisible to callers; the catalogue always answers
	_ = s.rdb.Set(ctx, key, raw, s.cacheTTL).Err()
}
