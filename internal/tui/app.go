package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/watchthis/internal/domain"
	"github.com/mmcdole/watchthis/internal/service"
	"github.com/mmcdole/watchthis/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// ChromeHeight is the vertical space used outside the list: one footer line
const ChromeHeight = 1

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	ShowSvc *service.ShowService

	// UI Components
	List     *components.ShowList
	AddModal components.AddShowModal

	// Data
	Loaded bool  // first fetch has resolved, with data or an error
	Err    error // last failed request; replaces the list until a fetch succeeds

	// closeAddOnLoad is set once an insert succeeds; the modal closes when
	// the re-fetch that follows it resolves
	closeAddOnLoad bool

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	InFlight     int
	SpinnerFrame int
}

// NewModel creates a new application model
func NewModel(showSvc *service.ShowService) Model {
	return Model{
		State:    StateBrowsing,
		ShowSvc:  showSvc,
		List:     components.NewShowList(),
		AddModal: components.NewAddShowModal(),
		InFlight: 1, // initial fetch from Init
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadShowsCmd(m.ShowSvc, false),
		TickCmd(100*time.Millisecond),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.FocusMsg:
		// Revalidate whenever the terminal regains focus
		m.InFlight++
		return m, LoadShowsCmd(m.ShowSvc, true)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case ShowsLoadedMsg:
		m.requestDone()
		m.Loaded = true
		m.Err = nil
		m.List.SetShows(msg.Shows)
		m.finishAdd()
		return m, nil

	case ShowsChangedMsg:
		m.requestDone()
		m.StatusMsg = statusFor(msg)
		m.StatusIsErr = false
		if msg.Op == OpAdd {
			m.closeAddOnLoad = true
		}
		m.InFlight++
		return m, tea.Batch(
			LoadShowsCmd(m.ShowSvc, false),
			ClearStatusCmd(3*time.Second),
		)

	case ErrMsg:
		m.requestDone()
		slog.Error("request failed", "context", msg.Context, "error", msg.Err)
		m.Loaded = true
		m.Err = msg.Err
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		switch msg.Op {
		case OpAdd:
			// Keep the draft so the user can submit again
			m.AddModal.SetSubmitting(false)
		case OpLoad:
			// The insert itself went through
			m.finishAdd()
		}
		return m, ClearStatusCmd(5 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	switch {
	case m.AddModal.IsOpen():
		m.AddModal, cmd, _ = m.AddModal.Update(msg)
	case m.List.IsFilterTyping():
		cmd = m.List.Update(msg)
	}
	return m, cmd
}

// finishAdd clears the draft and closes the modal after the re-fetch that
// follows a successful insert
func (m *Model) finishAdd() {
	if !m.closeAddOnLoad {
		return
	}
	m.closeAddOnLoad = false
	m.AddModal.Close()
}

func (m *Model) requestDone() {
	if m.InFlight > 0 {
		m.InFlight--
	}
}

// listReady returns whether the list is on screen and can be acted on
func (m Model) listReady() bool {
	return m.Loaded && m.Err == nil
}

func (m *Model) updateLayout() {
	m.List.SetSize(m.Width, max(m.Height-ChromeHeight, 0))
}

func statusFor(msg ShowsChangedMsg) string {
	title := msg.Title
	if title == "" {
		title = "untitled show"
	}
	switch msg.Op {
	case OpToggleCurrent:
		return "Updated: " + title
	case OpArchive:
		return "Archived: " + title
	case OpAdd:
		return "Added: " + title
	}
	return ""
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	contentHeight := max(m.Height-ChromeHeight, 0)

	var content string
	switch {
	case m.Err != nil:
		content = renderListError(m.Err, m.Width, contentHeight)
	case !m.Loaded:
		content = renderListLoading(m.Width, contentHeight)
	default:
		content = m.List.View()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderFooter(),
	)

	// Overlay add-show modal if visible
	if m.AddModal.IsOpen() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.AddModal.View())
	}

	return view
}

// SelectedShow returns the show under the list cursor, or nil when the list
// is not on screen
func (m Model) SelectedShow() *domain.Show {
	if !m.listReady() {
		return nil
	}
	return m.List.SelectedShow()
}
