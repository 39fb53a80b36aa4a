package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/watchthis/internal/domain"
)

// fakeRepo stands in for the GraphQL endpoint. It returns shows newest
// first and hides archived ones, as the server query does.
type fakeRepo struct {
	mu     sync.Mutex
	shows  []domain.Show
	nextID int
	err    error
	drafts []domain.ShowDraft
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

func (r *fakeRepo) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *fakeRepo) show(id int) domain.Show {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shows {
		if s.ID == id {
			return s
		}
	}
	return domain.Show{}
}

func (r *fakeRepo) ListShows(ctx context.Context) ([]domain.Show, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
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

// runCmd executes cmd and feeds every resulting message back into the
// model until no work is left. Timer commands (ticks, status clearing,
// cursor blink) are skipped.
func runCmd(m Model, cmd tea.Cmd) Model {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		msg, ok := execWithin(c, 200*time.Millisecond)
		if !ok {
			continue
		}
		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case TickMsg, ClearStatusMsg, tea.QuitMsg:
		default:
			next, nextCmd := m.Update(msg)
			m = next.(Model)
			queue = append(queue, nextCmd)
		}
	}
	return m
}

func execWithin(cmd tea.Cmd, d time.Duration) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(d):
		return nil, false
	}
}

// send delivers msg to the model and runs whatever it schedules
func send(m Model, msg tea.Msg) Model {
	next, cmd := m.Update(msg)
	return runCmd(next.(Model), cmd)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends each rune as its own key press
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}
