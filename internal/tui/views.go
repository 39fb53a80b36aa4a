package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/watchthis/internal/tui/styles"
)

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	return styles.AccentStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}

// renderListError renders only the error text in place of the list
func renderListError(err error, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(styles.ErrorStyle.Render(err.Error()))
}

// renderListLoading renders the placeholder shown before the first fetch
func renderListLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render("Loading...")
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	// Left side: spinner while requests are running, otherwise the status
	var left string
	if m.InFlight > 0 {
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Syncing...")
	} else if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	// Center section: action hints
	hint := func(k, desc string) string {
		return styles.HelpKeyStyle.Render(k) + styles.HelpDescStyle.Render(" "+desc)
	}
	center := strings.Join([]string{
		hint("c", "current"),
		hint("x", "archive"),
		hint("a", "add"),
	}, "  ")
	if m.AddModal.IsOpen() {
		center = strings.Join([]string{
			hint("tab", "next"),
			hint("enter", "add"),
			hint("esc", "cancel"),
		}, "  ")
	}

	// Right side: "? help" hint
	right := hint("?", "help")

	// Layout: left + centered hints + right
	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.Width {
		// Not enough space - just left + right
		gap := m.Width - leftWidth - rightWidth
		if gap < 0 {
			gap = 0
		}
		return left + strings.Repeat(" ", gap) + right
	}

	// Center the hints in available space
	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `NAVIGATION                      SHOWS
  j/k        Up/down               Space/c  Toggle current
  g/Home     First show            x        Archive
  G/End      Last show             a        Add a show
  Ctrl+u/d   Scroll half page

FILTER                          OTHER
  /          Filter                q        Quit
  Esc        Clear filter          ?        This help

ADD A SHOW
  Tab        Next field
  Enter      Add (or Cancel when focused)
  Esc        Cancel

Press any key to return...
`

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Watch This"),
		"",
		help,
	)

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(content))
}
