package tui

import "github.com/mmcdole/watchthis/internal/domain"

// Message types for the TUI

// Operation identifies the remote call behind a result message
type Operation int

const (
	OpLoad Operation = iota
	OpToggleCurrent
	OpArchive
	OpAdd
)

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
	Op      Operation
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ShowsLoadedMsg signals that the show list has been fetched
type ShowsLoadedMsg struct {
	Shows []domain.Show
}

// ShowsChangedMsg signals that a mutation completed and the cached list
// has been invalidated
type ShowsChangedMsg struct {
	Op     Operation
	ShowID int
	Title  string
}

// TickMsg is sent periodically for animations
type TickMsg struct{}

// ClearStatusMsg clears the status message
type ClearStatusMsg struct{}
