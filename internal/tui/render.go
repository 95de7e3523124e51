package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/listctl/internal/listing"
)

// tabwriterPadding is the minimum padding between plain-text columns.
const tabwriterPadding = 2

// RenderPlain writes v as aligned text: header, visible rows (or the
// placeholder), then the summary and the pagination strip.
func RenderPlain(w io.Writer, v listing.View) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	titles := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		titles[i] = headerLabel(col)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(titles, "\t")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if v.Empty() {
		if _, err := fmt.Fprintln(tw, v.Placeholder); err != nil {
			return fmt.Errorf("writing placeholder: %w", err)
		}
	}
	for _, e := range v.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(rowCells(e, len(v.Columns)), "\t")); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	return writeFooter(w, v, false)
}

// RenderStyled writes v as a bordered lipgloss table sized to width.
func RenderStyled(w io.Writer, v listing.View, width int) error {
	titles := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		titles[i] = headerLabel(col)
	}

	rows := make([][]string, 0, len(v.Rows))
	for _, e := range v.Rows {
		cells := rowCells(e, len(v.Columns))
		for i := range cells {
			cells[i] = truncate(cells[i], maxColumnWidth)
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(titles...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle.Padding(0, 1)
			case row%2 == 0:
				return lipgloss.NewStyle().Padding(0, 1)
			default:
				return SubtleStyle.Padding(0, 1)
			}
		})
	if width > 0 {
		t = t.Width(width)
	}

	out := t.Render()
	if v.Empty() {
		out += "\n" + PlaceholderStyle.Render(v.Placeholder)
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return writeFooter(w, v, true)
}

func writeFooter(w io.Writer, v listing.View, styled bool) error {
	summary := v.Summary
	if styled {
		summary = SubtleStyle.Render(summary)
	}
	if _, err := fmt.Fprintln(w, summary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if strip := renderControls(v.Controls, styled); strip != "" {
		if _, err := fmt.Fprintln(w, strip); err != nil {
			return fmt.Errorf("writing pagination: %w", err)
		}
	}
	return nil
}

// rowCells returns exactly n cells, padding missing ones with "".
func rowCells(e listing.Entry, n int) []string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = e.Field(i)
	}
	return cells
}
