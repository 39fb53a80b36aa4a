package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mmcdole/watchthis/internal/domain"
	"github.com/patrickmn/go-cache"
)

// ShowsQueryKey is the cache key of the show list query
const ShowsQueryKey = "shows"

// ShowService serves the show list from a cache and invalidates it after
// every completed mutation, so the next read re-fetches from the server.
type ShowService struct {
	repo   domain.ShowRepository
	logger *slog.Logger
	cache  *cache.Cache
	ttl    time.Duration

	// generation is bumped by every Invalidate. A fetch only fills the
	// cache when no invalidation happened while it was in flight.
	mu         sync.Mutex
	generation uint64
}

// maxFetchAttempts bounds re-fetching while mutations keep landing
const maxFetchAttempts = 3

// NewShowService creates a new show service. A zero ttl keeps the cached
// list until a mutation or an explicit Invalidate drops it.
func NewShowService(repo domain.ShowRepository, ttl time.Duration, logger *slog.Logger) *ShowService {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &ShowService{
		repo:   repo,
		logger: logger,
		cache:  cache.New(ttl, 10*time.Minute),
		ttl:    ttl,
	}
}

// Shows returns the visible (non-archived) shows, newest first.
// A fetch overlapped by a mutation is retried so stale rows are neither
// cached nor returned.
func (s *ShowService) Shows(ctx context.Context) ([]domain.Show, error) {
	if cached, ok := s.cache.Get(ShowsQueryKey); ok {
		s.logger.Debug("cache hit", "key", ShowsQueryKey)
		return cached.([]domain.Show), nil
	}

	var shows []domain.Show
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		gen := s.currentGeneration()

		fetched, err := s.repo.ListShows(ctx)
		if err != nil {
			s.logger.Error("failed to fetch shows", "error", err)
			return nil, err
		}
		shows = domain.VisibleShows(fetched)

		if s.storeIfCurrent(gen, shows) {
			s.logger.Info("loaded shows", "count", len(shows))
			return shows, nil
		}
		s.logger.Debug("show list changed during fetch", "attempt", attempt)
	}

	// Still racing mutations: hand back the latest rows uncached
	return shows, nil
}

// Invalidate drops the cached show list
func (s *ShowService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.cache.Delete(ShowsQueryKey)
	s.logger.Debug("cache invalidated", "key", ShowsQueryKey)
}

func (s *ShowService) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *ShowService) storeIfCurrent(gen uint64, shows []domain.Show) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.cache.Set(ShowsQueryKey, shows, s.ttl)
	return true
}

// ToggleCurrent flips the show's current flag on the server
func (s *ShowService) ToggleCurrent(ctx context.Context, show domain.Show) error {
	if err := s.repo.SetCurrent(ctx, show.ID, !show.IsCurrent); err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// Archive archives the show with the given id
func (s *ShowService) Archive(ctx context.Context, id int) error {
	if err := s.repo.ArchiveShow(ctx, id); err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// AddShow creates a show from the draft exactly as entered
func (s *ShowService) AddShow(ctx context.Context, draft domain.ShowDraft) (int, error) {
	id, err := s.repo.AddShow(ctx, draft)
	if err != nil {
		return 0, err
	}
	s.Invalidate()
	return id, nil
}
