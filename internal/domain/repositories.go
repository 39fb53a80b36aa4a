package domain

import "context"

// ShowRepository provides access to the remote show list and its mutations
type ShowRepository interface {
	// ListShows returns all non-archived shows, newest first
	ListShows(ctx context.Context) ([]Show, error)

	// SetCurrent sets the isCurrent flag of a show
	SetCurrent(ctx context.Context, id int, value bool) error

	// ArchiveShow marks a show as archived
	ArchiveShow(ctx context.Context, id int) error

	// AddShow inserts a new show and returns its server-assigned ID
	AddShow(ctx context.Context, draft ShowDraft) (int, error)
}
