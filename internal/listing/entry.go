package listing

import "strings"

// Column is one header cell of the host listing.
type Column struct {
	Title    string `json:"title"    yaml:"title"`
	Sortable bool   `json:"sortable" yaml:"sortable"`
}

// Entry is one row of the host listing. Fields are display strings addressed
// by column index; entries never change after capture.
type Entry struct {
	Index  int      `json:"index"  yaml:"index"`
	Fields []string `json:"fields" yaml:"fields"`
}

// Field returns the display text of column i, or "" when the cell is missing.
func (e Entry) Field(i int) string {
	if i < 0 || i >= len(e.Fields) {
		return ""
	}
	return e.Fields[i]
}

// Text returns the full-row text used for searching.
func (e Entry) Text() string {
	return strings.Join(e.Fields, " ")
}

// Host is a captured listing: the header and the entry collection.
type Host struct {
	ID      string   `json:"id"`
	Columns []Column `json:"columns"`
	Entries []Entry  `json:"entries"`
}

// NewHost captures rows as an entry collection. Cell text is trimmed; the
// rows slice is copied so later changes by the caller are not observed.
func NewHost(id string, columns []Column, rows [][]string) *Host {
	h := &Host{
		ID:      id,
		Columns: append([]Column(nil), columns...),
		Entries: make([]Entry, len(rows)),
	}
	for i, row := range rows {
		fields := make([]string, len(row))
		for j, cell := range row {
			fields[j] = strings.TrimSpace(cell)
		}
		h.Entries[i] = Entry{Index: i, Fields: fields}
	}
	return h
}

// Len returns the size of the entry collection.
func (h *Host) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Entries)
}

// ColumnSortable reports whether column i exists and allows sorting.
func (h *Host) ColumnSortable(i int) bool {
	if h == nil || i < 0 || i >= len(h.Columns) {
		return false
	}
	return h.Columns[i].Sortable
}

// MarkUnsortable clears Sortable on every column whose title matches one of
// titles, ignoring case and surrounding space. It returns how many columns
// changed.
func (h *Host) MarkUnsortable(titles []string) int {
	if h == nil || len(titles) == 0 {
		return 0
	}
	changed := 0
	for i, col := range h.Columns {
		for _, title := range titles {
			if col.Sortable && strings.EqualFold(strings.TrimSpace(col.Title), strings.TrimSpace(title)) {
				h.Columns[i].Sortable = false
				changed++
				break
			}
		}
	}
	return changed
}
