package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/watchthis/internal/domain"
	"github.com/mmcdole/watchthis/internal/service"
	"github.com/mmcdole/watchthis/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedShows() []domain.Show {
	return []domain.Show{
		{ID: 1, Title: "Dark", Platforms: "Netflix"},
		{ID: 2, Title: "Andor", Platforms: "Disney+", IsCurrent: true},
		{ID: 3, Title: "The Bear", Platforms: "Hulu, Disney+"},
		{ID: 4, Title: "Gone", Platforms: "HBO", IsArchived: true},
		{ID: 5, Title: "Severance", Platforms: "Apple TV+", IsCurrent: true},
	}
}

// newTestModel returns a sized model and its backing repo. The initial
// fetch has not run yet.
func newTestModel(shows ...domain.Show) (Model, *fakeRepo) {
	repo := newFakeRepo(shows...)
	m := NewModel(service.NewShowService(repo, 0, nil))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model), repo
}

func loadedModel(t *testing.T, shows ...domain.Show) (Model, *fakeRepo) {
	t.Helper()
	m, repo := newTestModel(shows...)
	m = runCmd(m, LoadShowsCmd(m.ShowSvc, false))
	require.True(t, m.Loaded)
	require.NoError(t, m.Err)
	return m, repo
}

func titles(shows []domain.Show) []string {
	out := make([]string, len(shows))
	for i, s := range shows {
		out[i] = s.Title
	}
	return out
}

func TestModelShowsLoadingBeforeFirstFetch(t *testing.T) {
	m, _ := newTestModel(seedShows()...)

	view := m.View()
	assert.Contains(t, view, "Loading...")
	assert.NotContains(t, view, "Severance")

	m = runCmd(m, m.Init())

	view = m.View()
	assert.NotContains(t, view, "Loading...")
	assert.Contains(t, view, "Severance")
}

func TestModelRendersCurrentGroupFirst(t *testing.T) {
	m, _ := loadedModel(t, seedShows()...)

	current, other := m.List.Groups()
	assert.Equal(t, []string{"Severance", "Andor"}, titles(current))
	assert.Equal(t, []string{"The Bear", "Dark"}, titles(other))

	view := m.View()
	heading := strings.Index(view, components.CurrentHeading)
	andor := strings.Index(view, "Andor")
	bear := strings.Index(view, "The Bear")
	require.True(t, heading >= 0 && andor >= 0 && bear >= 0)
	assert.Less(t, heading, andor)
	assert.Less(t, andor, bear)
}

func TestModelNeverShowsArchived(t *testing.T) {
	m, _ := loadedModel(t, seedShows()...)

	assert.NotContains(t, m.View(), "Gone")
	assert.Equal(t, 4, m.List.Len())
}

func TestModelToggleCurrentMovesShow(t *testing.T) {
	m, repo := loadedModel(t, seedShows()...)

	m = send(m, keyRunes("j"))
	m = send(m, keyRunes("j"))
	require.Equal(t, "The Bear", m.SelectedShow().Title)

	m = send(m, keyRunes("c"))

	assert.True(t, repo.show(3).IsCurrent)
	current, other := m.List.Groups()
	assert.Equal(t, []string{"Severance", "The Bear", "Andor"}, titles(current))
	assert.Equal(t, []string{"Dark"}, titles(other))
	assert.Equal(t, "The Bear", m.SelectedShow().Title)
	assert.Equal(t, 0, m.InFlight)

	// Toggling again sends it back
	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, repo.show(3).IsCurrent)
	_, other = m.List.Groups()
	assert.Equal(t, []string{"The Bear", "Dark"}, titles(other))
}

func TestModelArchiveRemovesShow(t *testing.T) {
	m, repo := loadedModel(t, seedShows()...)
	require.Equal(t, "Severance", m.SelectedShow().Title)

	m = send(m, keyRunes("x"))

	assert.True(t, repo.show(5).IsArchived)
	assert.Equal(t, 3, m.List.Len())
	current, _ := m.List.Groups()
	assert.Equal(t, []string{"Andor"}, titles(current))
	assert.Equal(t, "Andor", m.SelectedShow().Title)
}

func TestModelAddShowWithEmptyFields(t *testing.T) {
	m, repo := loadedModel(t, seedShows()...)

	m = send(m, keyRunes("a"))
	require.True(t, m.AddModal.IsOpen())
	assert.Contains(t, m.View(), "Add A Show")

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, repo.drafts, 1)
	assert.Equal(t, domain.ShowDraft{Title: "", Platforms: ""}, repo.drafts[0])
	assert.False(t, m.AddModal.IsOpen())
	assert.Equal(t, 5, m.List.Len())
}

func TestModelAddShowFromDraft(t *testing.T) {
	m, repo := loadedModel(t, seedShows()...)

	m = send(m, keyRunes("a"))
	m = typeText(m, "Lost")
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "ABC, Hulu")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, repo.drafts, 1)
	assert.Equal(t, domain.ShowDraft{Title: "Lost", Platforms: "ABC, Hulu"}, repo.drafts[0])
	assert.False(t, m.AddModal.IsOpen())
	assert.Equal(t, domain.ShowDraft{}, m.AddModal.Draft())

	_, other := m.List.Groups()
	assert.Equal(t, "Lost", other[0].Title)
	assert.Equal(t, []string{"ABC", "Hulu"}, other[0].PlatformList())
}

// submitAdd opens the modal, fills the title and presses enter. The insert
// command is returned unexecuted.
func submitAdd(t *testing.T, m Model, title string) (Model, tea.Cmd) {
	t.Helper()
	m = send(m, keyRunes("a"))
	m = typeText(m, title)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.True(t, m.AddModal.IsSubmitting())
	require.NotNil(t, cmd)
	return m, cmd
}

func TestModelAddShowClosesAfterRefetch(t *testing.T) {
	m, _ := loadedModel(t, seedShows()...)
	m, insert := submitAdd(t, m, "Lost")

	msg := insert()
	require.IsType(t, ShowsChangedMsg{}, msg)
	next, refetch := m.Update(msg)
	m = next.(Model)

	// Still open until the list has been re-fetched
	assert.True(t, m.AddModal.IsOpen())
	assert.True(t, m.AddModal.IsSubmitting())
	assert.Equal(t, "Lost", m.AddModal.Draft().Title)

	m = runCmd(m, refetch)

	assert.False(t, m.AddModal.IsOpen())
	assert.Equal(t, domain.ShowDraft{}, m.AddModal.Draft())
	_, other := m.List.Groups()
	assert.Equal(t, "Lost", other[0].Title)
}

func TestModelAddShowClosesWhenRefetchFails(t *testing.T) {
	m, repo := loadedModel(t, seedShows()...)
	m, insert := submitAdd(t, m, "Lost")

	next, refetch := m.Update(insert())
	m = next.(Model)
	repo.setErr(errors.New("graphql: connection reset"))
	m = runCmd(m, refetch)

	assert.False(t, m.AddModal.IsOpen())
	assert.EqualError(t, m.Err, "graphql: connection reset")
	require.Len(t, repo.drafts, 1)
}

func TestModelCancelIgnoredWhileAdding(t *testing.T) {
	m, repo := loadedModel(t, seedShows()...)
	m, insert := submitAdd(t, m, "Lost")

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = send(m, keyRunes("a"))
	m = typeText(m, "Severance 2")

	require.True(t, m.AddModal.IsOpen())
	assert.Equal(t, "Lost", m.AddModal.Draft().Title)

	m = runCmd(m, insert)

	require.Len(t, repo.drafts, 1)
	assert.Equal(t, "Lost", repo.drafts[0].Title)
	assert.False(t, m.AddModal.IsOpen())

	// A fresh session starts from an empty draft and is left alone
	m = send(m, keyRunes("a"))
	m = typeText(m, "Severance 2")
	assert.True(t, m.AddModal.IsOpen())
	assert.Equal(t, "Severance 2", m.AddModal.Draft().Title)
}

func TestModelCancelAddShow(t *testing.T) {
	m, repo := loadedModel(t, seedShows()...)

	m = send(m, keyRunes("a"))
	m = typeText(m, "Lost")
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.AddModal.IsOpen())
	assert.Empty(t, repo.drafts)

	// Reopening starts from an empty draft
	m = send(m, keyRunes("a"))
	assert.Equal(t, domain.ShowDraft{}, m.AddModal.Draft())
}

func TestModelQueryErrorReplacesList(t *testing.T) {
	m, repo := newTestModel(seedShows()...)
	repo.setErr(errors.New("graphql: field 'shows' not found in type: 'query_root'"))

	m = runCmd(m, m.Init())

	require.Error(t, m.Err)
	view := m.View()
	assert.Contains(t, view, "field 'shows' not found")
	assert.NotContains(t, view, components.CurrentHeading)
	assert.NotContains(t, view, "Dark")
	assert.NotContains(t, view, "Loading...")

	// Actions on the hidden list do nothing
	m = send(m, keyRunes("x"))
	assert.False(t, repo.show(5).IsArchived)
}

func TestModelMutationErrorReplacesList(t *testing.T) {
	m, repo := loadedModel(t, seedShows()...)
	repo.setErr(errors.New("graphql: permission denied"))

	m = send(m, keyRunes("c"))

	assert.EqualError(t, m.Err, "graphql: permission denied")
	assert.Contains(t, m.View(), "permission denied")
	assert.NotContains(t, m.View(), "Andor")
}

func TestModelFailedAddKeepsModalOpen(t *testing.T) {
	m, repo := loadedModel(t, seedShows()...)

	m = send(m, keyRunes("a"))
	m = typeText(m, "Lost")
	repo.setErr(errors.New("graphql: unexpected null"))
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Error(t, m.Err)
	assert.True(t, m.AddModal.IsOpen())
	assert.False(t, m.AddModal.IsSubmitting())
	assert.Equal(t, "Lost", m.AddModal.Draft().Title)

	// Retrying once the server recovers closes the modal and restores the list
	repo.setErr(nil)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.NoError(t, m.Err)
	assert.False(t, m.AddModal.IsOpen())
	assert.Equal(t, 5, m.List.Len())
}

func TestModelRevalidatesOnFocus(t *testing.T) {
	m, repo := loadedModel(t, seedShows()...)

	// Another client adds a show
	_, err := repo.AddShow(context.Background(), domain.ShowDraft{Title: "Lost", Platforms: "ABC"})
	require.NoError(t, err)
	assert.NotContains(t, m.View(), "Lost")

	m = send(m, tea.FocusMsg{})
	assert.Contains(t, m.View(), "Lost")

	// A failed revalidation shows the error, the next good one clears it
	repo.setErr(errors.New("graphql: connection refused"))
	m = send(m, tea.FocusMsg{})
	require.Error(t, m.Err)

	repo.setErr(nil)
	m = send(m, tea.FocusMsg{})
	assert.NoError(t, m.Err)
	assert.Contains(t, m.View(), "Lost")
}

func TestModelFilterCapturesActionKeys(t *testing.T) {
	m, repo := loadedModel(t, seedShows()...)

	m = send(m, keyRunes("/"))
	require.True(t, m.List.IsFilterTyping())
	m = typeText(m, "dxa")

	for _, s := range seedShows() {
		assert.Equal(t, s.IsArchived, repo.show(s.ID).IsArchived)
	}
	assert.False(t, m.AddModal.IsOpen())

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.List.IsFiltering())
	assert.Equal(t, 4, m.List.Len())
}

func TestModelHelpScreen(t *testing.T) {
	m, _ := loadedModel(t, seedShows()...)

	m = send(m, keyRunes("?"))
	require.Equal(t, StateHelp, m.State)
	assert.Contains(t, m.View(), "Toggle current")

	m = send(m, keyRunes("j"))
	assert.Equal(t, StateBrowsing, m.State)
}

func TestModelQuit(t *testing.T) {
	m, _ := loadedModel(t, seedShows()...)

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestLoadShowsCmdPassesErrorThrough(t *testing.T) {
	repo := newFakeRepo()
	repo.setErr(errors.New("graphql: boom"))
	svc := service.NewShowService(repo, 0, nil)

	msg := LoadShowsCmd(svc, false)()

	errMsg, ok := msg.(ErrMsg)
	require.True(t, ok)
	assert.Equal(t, OpLoad, errMsg.Op)
	assert.EqualError(t, errMsg.Err, "graphql: boom")
	assert.Equal(t, "loading shows: graphql: boom", errMsg.Error())
}
