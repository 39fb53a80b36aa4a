package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/watchthis/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key leaves the help screen
	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	// Route to the modal while it is open
	if m.AddModal.IsOpen() {
		return m.routeToModal(msg)
	}

	// Typing into the filter captures everything except ctrl+c
	if m.List.IsFilterTyping() {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, m.List.Update(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Add):
		cmd := m.AddModal.Open()
		return m, cmd

	case key.Matches(msg, Keys.ToggleCurrent):
		if show := m.SelectedShow(); show != nil {
			m.InFlight++
			return m, ToggleCurrentCmd(m.ShowSvc, *show)
		}
		return m, nil

	case key.Matches(msg, Keys.Archive):
		if show := m.SelectedShow(); show != nil {
			m.InFlight++
			return m, ArchiveShowCmd(m.ShowSvc, *show)
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		if !m.listReady() {
			return m, nil
		}
		if !m.List.IsFiltering() {
			m.List.ToggleFilter()
			return m, nil
		}
	}

	// Navigation (and escape/refocus of an applied filter)
	if !m.listReady() {
		return m, nil
	}
	return m, m.List.Update(msg)
}

// routeToModal forwards input to the add-show modal and starts the insert
// when the form is submitted
func (m Model) routeToModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	var action components.ModalAction
	m.AddModal, cmd, action = m.AddModal.Update(msg)

	if action == components.ModalSubmit {
		m.InFlight++
		return m, tea.Batch(cmd, AddShowCmd(m.ShowSvc, m.AddModal.Draft()))
	}
	return m, cmd
}
