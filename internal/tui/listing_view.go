package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/listctl/internal/listing"
	"github.com/rshade/listctl/internal/pagination"
)

const (
	// maxColumnWidth caps a column; longer cells are truncated.
	maxColumnWidth = 40
	columnGap      = "  "
	ellipsis       = "…"
)

// rowLayout holds the column widths of the current page. It is shared by
// every copy of the model so the viewport's render func sees fresh widths.
type rowLayout struct {
	widths []int
}

func (l *rowLayout) update(v listing.View) {
	l.widths = columnWidths(v)
}

func (l *rowLayout) render(e listing.Entry, selected bool) string {
	row := formatCells(e.Fields, l.widths)
	if selected {
		return TableSelectedStyle.Render(row)
	}
	return row
}

// columnWidths sizes each column to its widest title or visible cell.
func columnWidths(v listing.View) []int {
	widths := make([]int, len(v.Columns))
	for i, col := range v.Columns {
		widths[i] = lipgloss.Width(headerLabel(col))
	}
	for _, e := range v.Rows {
		for i := range widths {
			if w := lipgloss.Width(e.Field(i)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

func headerLabel(col listing.ColumnView) string {
	if col.Indicator == "" {
		return col.Title
	}
	return col.Title + " " + col.Indicator
}

func formatCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = pad(truncate(cell, w), w)
	}
	return strings.Join(parts, columnGap)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// View renders the current view (Bubble Tea interface).
func (m ListingModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return CriticalStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	case ViewStateLoading:
		return m.loading.View()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m ListingModel) renderListView() string {
	if m.ctrl == nil || m.ctrl.Inert() {
		return CriticalStyle.Render(listing.PlaceholderText) + "\n"
	}

	sections := []string{m.renderTitle()}
	if m.view.Searchable {
		sections = append(sections, m.renderSearch())
	}
	sections = append(sections, m.renderHeader())
	if m.view.Empty() {
		sections = append(sections, PlaceholderStyle.Render(m.view.Placeholder))
	} else {
		sections = append(sections, m.rows.View())
	}
	sections = append(sections,
		"",
		m.renderFooter(),
		m.help.View(m.keys),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ListingModel) renderTitle() string {
	title := TitleStyle.Render(m.view.HostID)
	size := SubtleStyle.Render(fmt.Sprintf("Show %s entries", m.view.PageSize))
	return title + "  " + size
}

func (m ListingModel) renderSearch() string {
	label := LabelStyle.Render("Search: ")
	if !m.searching && m.search.Value() == "" {
		return label + SubtleStyle.Render("press / to filter")
	}
	return label + m.search.View()
}

func (m ListingModel) renderHeader() string {
	widths := m.layout.widths
	parts := make([]string, len(m.view.Columns))
	for i, col := range m.view.Columns {
		cell := pad(truncate(headerLabel(col), widths[i]), widths[i])
		if i == m.focusCol && m.view.Sortable {
			parts[i] = FocusedHeaderStyle.Render(cell)
		} else {
			parts[i] = TableHeaderStyle.Render(cell)
		}
	}
	return strings.Join(parts, columnGap)
}

func (m ListingModel) renderFooter() string {
	footer := SubtleStyle.Render(m.view.Summary)
	if strip := renderControls(m.view.Controls, true); strip != "" {
		footer += "   " + strip
	}
	return footer
}

// renderControls lays out the pagination strip. Styled output highlights
// the active page and dims disabled controls; plain output brackets the
// active page.
func renderControls(controls []pagination.Control, styled bool) string {
	if len(controls) == 0 {
		return ""
	}
	parts := make([]string, len(controls))
	for i, ctl := range controls {
		label := ctl.Label
		switch {
		case ctl.Active && styled:
			label = ActivePageStyle.Render(" " + label + " ")
		case ctl.Active:
			label = "[" + label + "]"
		case ctl.Disabled && styled:
			label = SubtleStyle.Render(label)
		}
		parts[i] = label
	}
	return strings.Join(parts, " ")
}
