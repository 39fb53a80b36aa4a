package service

import (
	"context"
	"sync"

	"github.com/mmcdole/watchthis/internal/domain"
)

// fakeRepo is an in-memory domain.ShowRepository that behaves like the
// server: archived shows are filtered out of ListShows and ids are assigned
// in increasing order.
type fakeRepo struct {
	mu     sync.Mutex
	shows  []domain.Show
	nextID int
	err    error

	listCalls int
	drafts    []domain.ShowDraft
}

func newFakeRepo(shows ...domain.Show) *fakeRepo {
	next := 1
	for _, s := range shows {
		if s.ID >= next {
			next = s.ID + 1
		}
	}
	return &fakeRepo{shows: shows, nextID: next}
}

func (r *fakeRepo) ListShows(ctx context.Context) ([]domain.Show, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Show
	for i := len(r.shows) - 1; i >= 0; i-- {
		if !r.shows[i].IsArchived {
			out = append(out, r.shows[i])
		}
	}
	return out, nil
}

func (r *fakeRepo) SetCurrent(ctx context.Context, id int, value bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i := range r.shows {
		if r.shows[i].ID == id {
			r.shows[i].IsCurrent = value
		}
	}
	return nil
}

func (r *fakeRepo) ArchiveShow(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i := range r.shows {
		if r.shows[i].ID == id {
			r.shows[i].IsArchived = true
			return nil
		}
	}
	return domain.ErrShowNotFound
}

func (r *fakeRepo) AddShow(ctx context.Context, draft domain.ShowDraft) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.drafts = append(r.drafts, draft)
	id := r.nextID
	r.nextID++
	r.shows = append(r.shows, domain.Show{ID: id, Title: draft.Title, Platforms: draft.Platforms})
	return id, nil
}
