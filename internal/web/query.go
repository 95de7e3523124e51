package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rshade/listctl/internal/listing"
	"github.com/rshade/listctl/internal/pagination"
)

// Query parameter names.
const (
	ParamTerm = "q"
	ParamSort = "sort"
	ParamDir  = "dir"
	ParamSize = "size"
	ParamPage = "page"

	DirAsc  = "asc"
	DirDesc = "desc"
)

// Query is a listing state expressed as URL parameters.
type Query struct {
	Term string
	// Column is the sort column, or listing.NoColumn.
	Column int
	Desc   bool
	// Size is the page size; the zero value keeps the configured default.
	Size pagination.PageSize
	// Page is the requested page; 0 keeps page 1.
	Page int
}

// ParseQuery reads a Query from values. Unusable parameters are dropped and
// described in the returned warnings. The sort column may be given by index
// or by title.
func ParseQuery(values url.Values, host *listing.Host) (Query, []string) {
	q := Query{
		Term:   values.Get(ParamTerm),
		Column: listing.NoColumn,
	}
	var warnings []string

	if raw := strings.TrimSpace(values.Get(ParamSort)); raw != "" {
		col, ok := resolveColumn(raw, host)
		if ok {
			q.Column = col
		} else {
			warnings = append(warnings, fmt.Sprintf("unknown sort column %q", raw))
		}
	}

	switch dir := strings.ToLower(strings.TrimSpace(values.Get(ParamDir))); dir {
	case "", DirAsc:
	case DirDesc:
		q.Desc = true
	default:
		warnings = append(warnings, fmt.Sprintf("invalid dir %q", dir))
	}

	if raw := values.Get(ParamSize); raw != "" {
		size, err := pagination.ParsePageSize(raw)
		if err != nil {
			warnings = append(warnings, err.Error())
		} else {
			q.Size = size
		}
	}

	if raw := values.Get(ParamPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid page %q", raw))
		} else {
			q.Page = page
		}
	}

	return q, warnings
}

func resolveColumn(raw string, host *listing.Host) (int, bool) {
	if host == nil {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, n >= 0 && n < len(host.Columns)
	}
	for i, col := range host.Columns {
		if strings.EqualFold(col.Title, raw) {
			return i, true
		}
	}
	return 0, false
}

// Intents returns the intents that rebuild the state from scratch: filter,
// sort (twice for descending), page size, then page.
func (q Query) Intents() []listing.Intent {
	var intents []listing.Intent
	if q.Term != "" {
		intents = append(intents, listing.Filter(q.Term))
	}
	if q.Column != listing.NoColumn {
		intents = append(intents, listing.Sort(q.Column))
		if q.Desc {
			intents = append(intents, listing.Sort(q.Column))
		}
	}
	if q.Size.Valid() {
		intents = append(intents, listing.SetPageSize(q.Size))
	}
	if q.Page > 0 {
		intents = append(intents, listing.GoToPage(q.Page))
	}
	return intents
}

// FromView captures the state shown by v as a Query.
func FromView(v listing.View) Query {
	q := Query{
		Term:   v.Term,
		Column: v.Sort.Column,
		Desc:   v.Sort.Active() && !v.Sort.Ascending,
		Size:   v.PageSize,
		Page:   v.Meta.CurrentPage,
	}
	return q
}

// Values encodes q. Defaults are omitted to keep URLs short.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Term != "" {
		values.Set(ParamTerm, q.Term)
	}
	if q.Column != listing.NoColumn {
		values.Set(ParamSort, strconv.Itoa(q.Column))
		if q.Desc {
			values.Set(ParamDir, DirDesc)
		}
	}
	if q.Size.Valid() {
		values.Set(ParamSize, q.Size.String())
	}
	if q.Page > 1 {
		values.Set(ParamPage, strconv.Itoa(q.Page))
	}
	return values
}

// Href returns "?<encoded query>" for use in links.
func (q Query) Href() string {
	encoded := q.Values().Encode()
	if encoded == "" {
		return "?"
	}
	return "?" + encoded
}

// WithPage returns q on page n.
func (q Query) WithPage(n int) Query {
	q.Page = n
	return q
}

// WithSort returns the query a click on column col produces: ascending on a
// new column, the opposite direction on the active one. The page resets.
func (q Query) WithSort(col int) Query {
	if q.Column == col {
		q.Desc = !q.Desc
	} else {
		q.Column = col
		q.Desc = false
	}
	q.Page = 0
	return q
}
