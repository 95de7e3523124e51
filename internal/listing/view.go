package listing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/listctl/internal/pagination"
)

// Sort indicators shown next to column titles.
const (
	IndicatorAscending  = "▲"
	IndicatorDescending = "▼"
	IndicatorUnsorted   = "⇅"
)

// PlaceholderText is displayed instead of rows when nothing matches.
const PlaceholderText = "No matching records found"

// ColumnView is a header cell as it should be displayed.
type ColumnView struct {
	Index     int    `json:"index"`
	Title     string `json:"title"`
	Sortable  bool   `json:"sortable"`
	Indicator string `json:"indicator,omitempty"`
}

// View is the projection of State that a renderer reconciles against its
// display. Rows is exactly the visible slice; when the filtered view is empty
// Rows is empty and Placeholder is set.
type View struct {
	HostID          string                `json:"host_id"`
	Columns         []ColumnView          `json:"columns"`
	Rows            []Entry               `json:"rows"`
	Placeholder     string                `json:"placeholder,omitempty"`
	Summary         string                `json:"summary"`
	Meta            pagination.Meta       `json:"pagination"`
	Controls        []pagination.Control  `json:"controls"`
	Term            string                `json:"term"`
	PageSize        pagination.PageSize   `json:"page_size"`
	PageSizeOptions []pagination.PageSize `json:"page_size_options"`
	Searchable      bool                  `json:"searchable"`
	Sortable        bool                  `json:"sortable"`
	Sort            SortState             `json:"sort"`
}

// Empty reports whether the filtered view holds no entries.
func (v View) Empty() bool {
	return v.Meta.TotalItems == 0
}

// Project computes the View for s. The page is clamped here as well, so a
// View is always internally consistent even for a hand-built State.
func Project(host *Host, s State, cfg Config, printer *message.Printer) View {
	if host == nil {
		return View{}
	}

	meta := pagination.NewMeta(s.PageSize, s.Page, len(s.View))

	rows := make([]Entry, 0, meta.End-meta.Start)
	for _, idx := range s.View[meta.Start:meta.End] {
		rows = append(rows, host.Entries[idx])
	}

	v := View{
		HostID:          host.ID,
		Columns:         projectColumns(host, s.Sort, cfg.Sortable),
		Rows:            rows,
		Summary:         summary(printer, meta),
		Meta:            meta,
		Controls:        pagination.Controls(meta.CurrentPage, meta.TotalPages),
		Term:            s.Term,
		PageSize:        s.PageSize,
		PageSizeOptions: append([]pagination.PageSize(nil), cfg.PageSizeOptions...),
		Searchable:      cfg.Searchable,
		Sortable:        cfg.Sortable,
		Sort:            s.Sort,
	}
	if meta.TotalItems == 0 {
		v.Placeholder = PlaceholderText
	}
	return v
}

func projectColumns(host *Host, sortState SortState, sortable bool) []ColumnView {
	cols := make([]ColumnView, len(host.Columns))
	for i, col := range host.Columns {
		cv := ColumnView{
			Index:    i,
			Title:    col.Title,
			Sortable: sortable && col.Sortable,
		}
		if cv.Sortable {
			switch {
			case sortState.Column != i:
				cv.Indicator = IndicatorUnsorted
			case sortState.Ascending:
				cv.Indicator = IndicatorAscending
			default:
				cv.Indicator = IndicatorDescending
			}
		}
		cols[i] = cv
	}
	return cols
}

func summary(printer *message.Printer, meta pagination.Meta) string {
	if meta.TotalItems == 0 {
		return "Showing 0 entries"
	}
	if printer == nil {
		printer = message.NewPrinter(language.English)
	}
	return printer.Sprintf("Showing %d to %d of %d entries", meta.Start+1, meta.End, meta.TotalItems)
}
