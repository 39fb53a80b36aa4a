package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/watchthis/internal/domain"
	"github.com/mmcdole/watchthis/internal/service"
)

// RequestTimeout bounds every remote call started from the UI
const RequestTimeout = 30 * time.Second

// Command factories for async operations

// LoadShowsCmd fetches the show list. With revalidate set the cached list
// is dropped first so the server is always asked.
func LoadShowsCmd(svc *service.ShowService, revalidate bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		if revalidate {
			svc.Invalidate()
		}
		shows, err := svc.Shows(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading shows", Op: OpLoad}
		}
		return ShowsLoadedMsg{Shows: shows}
	}
}

// ToggleCurrentCmd flips the current flag of a show
func ToggleCurrentCmd(svc *service.ShowService, show domain.Show) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		if err := svc.ToggleCurrent(ctx, show); err != nil {
			return ErrMsg{Err: err, Context: "updating " + show.Title, Op: OpToggleCurrent}
		}
		return ShowsChangedMsg{Op: OpToggleCurrent, ShowID: show.ID, Title: show.Title}
	}
}

// ArchiveShowCmd archives a show
func ArchiveShowCmd(svc *service.ShowService, show domain.Show) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		if err := svc.Archive(ctx, show.ID); err != nil {
			return ErrMsg{Err: err, Context: "archiving " + show.Title, Op: OpArchive}
		}
		return ShowsChangedMsg{Op: OpArchive, ShowID: show.ID, Title: show.Title}
	}
}

// AddShowCmd inserts a new show from the modal draft
func AddShowCmd(svc *service.ShowService, draft domain.ShowDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := svc.AddShow(ctx, draft)
		if err != nil {
			return ErrMsg{Err: err, Context: "adding show", Op: OpAdd}
		}
		return ShowsChangedMsg{Op: OpAdd, ShowID: id, Title: draft.Title}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
