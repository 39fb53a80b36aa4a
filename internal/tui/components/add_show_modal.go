package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/watchthis/internal/domain"
	"github.com/mmcdole/watchthis/internal/tui/styles"
)

// ModalAction is the outcome of a key press inside the add-show modal
type ModalAction int

const (
	ModalNone ModalAction = iota
	ModalSubmit
	ModalCancel
)

// Focusable elements of the modal, in tab order
const (
	focusTitle = iota
	focusPlatforms
	focusAdd
	focusCancel
	focusCount
)

const addShowModalWidth = 44

// AddShowModal is the add-show form. It is either closed or open; edits only
// change the local draft until the form is submitted.
type AddShowModal struct {
	visible    bool
	submitting bool
	focus      int

	title     textinput.Model
	platforms textinput.Model
}

// NewAddShowModal creates a closed add-show modal
func NewAddShowModal() AddShowModal {
	return AddShowModal{
		title:     newModalInput("title"),
		platforms: newModalInput("platform(s) comma delimited"),
	}
}

func newModalInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Width = addShowModalWidth - 4
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	return ti
}

// Open shows the modal with the title field focused
func (m *AddShowModal) Open() tea.Cmd {
	m.visible = true
	m.submitting = false
	return m.setFocus(focusTitle)
}

// Close clears the draft and hides the modal
func (m *AddShowModal) Close() {
	m.visible = false
	m.submitting = false
	m.title.SetValue("")
	m.platforms.SetValue("")
	m.title.Blur()
	m.platforms.Blur()
	m.focus = focusTitle
}

// IsOpen returns whether the modal is shown
func (m AddShowModal) IsOpen() bool {
	return m.visible
}

// IsSubmitting returns whether an add request is in flight
func (m AddShowModal) IsSubmitting() bool {
	return m.submitting
}

// SetSubmitting marks whether an add request is in flight
func (m *AddShowModal) SetSubmitting(submitting bool) {
	m.submitting = submitting
}

// Draft returns the current field values exactly as typed
func (m AddShowModal) Draft() domain.ShowDraft {
	return domain.ShowDraft{
		Title:     m.title.Value(),
		Platforms: m.platforms.Value(),
	}
}

// Update handles input events, returns (modal, cmd, action).
// Cancelling closes the modal itself; submitting leaves it open until the
// caller closes it after the request succeeds. While a request is in flight
// every key is ignored, cancel included, since the insert cannot be recalled.
func (m AddShowModal) Update(msg tea.Msg) (AddShowModal, tea.Cmd, ModalAction) {
	if !m.visible {
		return m, nil, ModalNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case m.submitting:
			return m, nil, ModalNone
		case key.Matches(keyMsg, AddShowModalKeys.Cancel):
			m.Close()
			return m, nil, ModalCancel
		case key.Matches(keyMsg, AddShowModalKeys.Submit):
			if m.focus == focusCancel {
				m.Close()
				return m, nil, ModalCancel
			}
			m.submitting = true
			return m, nil, ModalSubmit
		case key.Matches(keyMsg, AddShowModalKeys.Next):
			cmd := m.setFocus((m.focus + 1) % focusCount)
			return m, cmd, ModalNone
		case key.Matches(keyMsg, AddShowModalKeys.Prev):
			cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, cmd, ModalNone
		}
	}

	if m.submitting {
		return m, nil, ModalNone
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusPlatforms:
		m.platforms, cmd = m.platforms.Update(msg)
	}
	return m, cmd, ModalNone
}

func (m *AddShowModal) setFocus(focus int) tea.Cmd {
	m.focus = focus
	m.title.Blur()
	m.platforms.Blur()
	switch focus {
	case focusTitle:
		return m.title.Focus()
	case focusPlatforms:
		return m.platforms.Focus()
	}
	return nil
}

// View renders the modal
func (m AddShowModal) View() string {
	if !m.visible {
		return ""
	}

	block := lipgloss.NewStyle().
		Width(addShowModalWidth).
		Background(styles.SlateDark)

	addStyle, cancelStyle := styles.ButtonStyle, styles.ButtonStyle
	switch m.focus {
	case focusAdd:
		addStyle = styles.ButtonFocusedStyle
	case focusCancel:
		cancelStyle = styles.ButtonFocusedStyle
	}
	addLabel := "Add"
	if m.submitting {
		addLabel = "Adding..."
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		addStyle.Render(addLabel),
		styles.DimStyle.Render("│"),
		cancelStyle.Render("Cancel"),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		block.Inherit(styles.ModalTitleStyle).Render("Add A Show"),
		block.Render(""),
		block.Render(m.title.View()),
		block.Render(m.platforms.View()),
		block.Render(""),
		block.Render(buttons),
	)

	return styles.ModalStyle.Render(content)
}
