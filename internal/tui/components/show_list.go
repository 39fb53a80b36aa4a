package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/watchthis/internal/domain"
	"github.com/mmcdole/watchthis/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for the show list
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// CurrentHeading titles the group of shows being watched
	CurrentHeading = "Current"
)

// ShowList renders shows in two groups: current shows under a heading,
// followed by everything else. A single cursor walks both groups in
// display order.
type ShowList struct {
	shows []domain.Show // server order, archived already removed

	// Display order: indices into shows, current group first
	rows         []int
	currentCount int

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width  int
	height int

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
}

// NewShowList creates an empty show list
func NewShowList() *ShowList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &ShowList{filterInput: ti}
}

// SetShows replaces the list content. The cursor stays on the same show
// when it is still present, so a toggled show keeps the selection as it
// moves between groups.
func (l *ShowList) SetShows(shows []domain.Show) {
	selectedID, hadSelection := 0, false
	if s := l.SelectedShow(); s != nil {
		selectedID, hadSelection = s.ID, true
	}

	l.shows = domain.VisibleShows(shows)
	l.rebuildRows()

	l.cursor = 0
	if hadSelection {
		for i, idx := range l.rows {
			if l.shows[idx].ID == selectedID {
				l.cursor = i
				break
			}
		}
	}
	l.clampCursor()
	l.ensureVisible()
}

// Shows returns the shows currently held by the list
func (l *ShowList) Shows() []domain.Show {
	return l.shows
}

// Groups returns the displayed shows split into current and other groups
func (l *ShowList) Groups() (current, other []domain.Show) {
	for i, idx := range l.rows {
		if i < l.currentCount {
			current = append(current, l.shows[idx])
		} else {
			other = append(other, l.shows[idx])
		}
	}
	return current, other
}

// SelectedShow returns the show under the cursor, or nil
func (l *ShowList) SelectedShow() *domain.Show {
	if l.cursor < 0 || l.cursor >= len(l.rows) {
		return nil
	}
	s := l.shows[l.rows[l.cursor]]
	return &s
}

// Cursor returns the cursor position in display order
func (l *ShowList) Cursor() int {
	return l.cursor
}

// Len returns the number of displayed rows
func (l *ShowList) Len() int {
	return len(l.rows)
}

// SetSize sets the outer dimensions of the list
func (l *ShowList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.recalcMaxVisible()
	l.ensureVisible()
}

// ToggleFilter activates the filter input
func (l *ShowList) ToggleFilter() {
	l.filterActive = true
	l.filterInput.Focus()
	l.recalcMaxVisible()
}

// IsFiltering returns true if filter mode is active
func (l *ShowList) IsFiltering() bool {
	return l.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (l *ShowList) IsFilterTyping() bool {
	return l.filterActive && l.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all items
func (l *ShowList) ClearFilter() {
	l.filterActive = false
	l.filterQuery = ""
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.rebuildRows()
	l.clampCursor()
	l.ensureVisible()
}

// Update handles navigation and filter input
func (l *ShowList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)

	// Typing into the filter
	if l.IsFilterTyping() {
		if isKey {
			switch {
			case key.Matches(keyMsg, ShowListKeys.Escape):
				l.ClearFilter()
				return nil
			case key.Matches(keyMsg, ShowListKeys.Enter):
				l.filterInput.Blur()
				return nil
			case keyMsg.Type == tea.KeyBackspace && l.filterInput.Value() == "":
				l.ClearFilter()
				return nil
			}
		}

		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		l.applyFilter()
		return cmd
	}

	if !isKey {
		return nil
	}

	// Filter applied but blurred: navigation over the results
	if l.filterActive {
		switch {
		case key.Matches(keyMsg, ShowListKeys.Escape):
			l.ClearFilter()
			return nil
		case key.Matches(keyMsg, ShowListKeys.Filter):
			l.filterInput.Focus()
			return nil
		}
	}

	count := len(l.rows)
	if count == 0 {
		return nil
	}

	switch {
	case key.Matches(keyMsg, ShowListKeys.Down):
		if l.cursor < count-1 {
			l.cursor++
		}
	case key.Matches(keyMsg, ShowListKeys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(keyMsg, ShowListKeys.Home):
		l.cursor = 0
		l.offset = 0
	case key.Matches(keyMsg, ShowListKeys.End):
		l.cursor = count - 1
	case key.Matches(keyMsg, ShowListKeys.HalfDown):
		l.cursor = min(l.cursor+max(l.maxVisible/2, 1), count-1)
	case key.Matches(keyMsg, ShowListKeys.HalfUp):
		l.cursor = max(l.cursor-max(l.maxVisible/2, 1), 0)
	}
	l.ensureVisible()

	return nil
}

// View renders the list inside a border
func (l *ShowList) View() string {
	style := styles.ActiveBorder
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(max(l.width-frameW, 0)).
		Height(max(l.height-frameH, 0)).
		Render(l.renderContent())
}

// Internal methods

func (l *ShowList) rebuildRows() {
	match := l.matcher()

	l.rows = l.rows[:0]
	l.currentCount = 0
	for i, s := range l.shows {
		if s.IsCurrent && match(i) {
			l.rows = append(l.rows, i)
			l.currentCount++
		}
	}
	for i, s := range l.shows {
		if !s.IsCurrent && match(i) {
			l.rows = append(l.rows, i)
		}
	}
	l.recalcMaxVisible()
}

// matcher returns a predicate over show indices for the active filter query.
// Titles are matched with sahilm/fuzzy, platforms with fuzzysearch.
func (l *ShowList) matcher() func(int) bool {
	query := strings.TrimSpace(l.filterQuery)
	if query == "" {
		return func(int) bool { return true }
	}

	titles := make([]string, len(l.shows))
	for i, s := range l.shows {
		titles[i] = strings.ToLower(s.Title)
	}
	hits := make(map[int]bool)
	for _, m := range fuzzy.Find(strings.ToLower(query), titles) {
		hits[m.Index] = true
	}

	return func(i int) bool {
		if hits[i] {
			return true
		}
		for _, p := range l.shows[i].PlatformList() {
			if fuzzysearch.MatchNormalizedFold(query, p) {
				return true
			}
		}
		return false
	}
}

func (l *ShowList) applyFilter() {
	l.filterQuery = l.filterInput.Value()
	l.rebuildRows()

	// Reset cursor to first match
	l.cursor = 0
	l.offset = 0
}

func (l *ShowList) clampCursor() {
	if l.cursor >= len(l.rows) {
		l.cursor = len(l.rows) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *ShowList) recalcMaxVisible() {
	if l.height <= 0 {
		// Not sized yet: renderContent shows every row
		l.maxVisible = 0
		return
	}

	// Interior height minus scroll indicators, heading and group gap
	interiorHeight := l.height - BorderHeight
	l.maxVisible = interiorHeight - ScrollIndicatorLines - 2
	if l.currentCount == 0 {
		// "Nothing current" placeholder under the heading
		l.maxVisible--
	}
	if l.filterActive {
		l.maxVisible--
	}
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
}

func (l *ShowList) ensureVisible() {
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

func (l *ShowList) renderContent() string {
	itemWidth := l.width - BorderWidth
	if itemWidth < 10 {
		itemWidth = 10
	}

	var lines []string

	end := min(l.offset+l.maxVisible, len(l.rows))
	if l.maxVisible <= 0 {
		// Size not known yet: render everything
		end = len(l.rows)
	}

	header := " "
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	lines = append(lines, header)

	// The heading is always shown while the current group is in view
	if l.offset < l.currentCount || l.currentCount == 0 {
		lines = append(lines, styles.SectionStyle.Render(CurrentHeading))
	}
	if l.currentCount == 0 {
		lines = append(lines, styles.DimStyle.Render("  Nothing current"))
	}

	for i := l.offset; i < end; i++ {
		if i == l.currentCount {
			lines = append(lines, " ")
		}
		lines = append(lines, l.renderShowRow(l.shows[l.rows[i]], i == l.cursor, itemWidth))
	}

	if len(l.rows) == 0 {
		emptyMsg := "No shows"
		if l.filterActive && l.filterQuery != "" {
			emptyMsg = "No matches"
		}
		lines = append(lines, " ", styles.DimStyle.Render(emptyMsg))
	}

	footer := " "
	if end < len(l.rows) {
		footer = styles.DimStyle.Render("↓ more")
	}
	lines = append(lines, footer)

	if l.filterActive {
		lines = append(lines, l.renderFilterBar())
	}

	return strings.Join(lines, "\n")
}

func (l *ShowList) renderShowRow(show domain.Show, selected bool, width int) string {
	toggle := styles.AddCurrentChar
	toggleFg := styles.Green
	if show.IsCurrent {
		toggle = styles.RemoveCurrentChar
		toggleFg = styles.Accent
	}
	archiveFg := styles.Red
	badgeBg := styles.SlateMid
	badgeFg := styles.White

	// toggle(1) + space + archive(1) + space + margins(2)
	available := width - 6
	platforms := show.PlatformList()

	badgeWidth := 0
	for _, p := range platforms {
		badgeWidth += lipgloss.Width(p) + 3 // space + padded badge
	}
	titleWidth := available - badgeWidth
	if titleWidth < 5 {
		// Not enough room for badges; title wins
		titleWidth = available
		platforms = nil
	}

	parts := []styles.RowPart{
		{Text: toggle, Foreground: &toggleFg},
		{Text: " "},
		{Text: styles.ArchiveChar, Foreground: &archiveFg},
		{Text: " "},
		{Text: styles.Truncate(show.Title, titleWidth), Bold: show.IsCurrent},
	}
	for _, p := range platforms {
		parts = append(parts,
			styles.RowPart{Text: " "},
			styles.RowPart{Text: " " + p + " ", Foreground: &badgeFg, Background: &badgeBg},
		)
	}

	return styles.RenderListRow(parts, selected, width)
}

func (l *ShowList) renderFilterBar() string {
	input := l.filterInput.View()
	if l.filterQuery == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", len(l.rows), len(l.shows)))
}
