package listing

import (
	"sort"

	"github.com/rshade/listctl/internal/pagination"
)

// NoColumn marks a SortState with no active column (collection order).
const NoColumn = -1

// SortState is the active sort column and direction.
type SortState struct {
	Column    int  `json:"column"`
	Ascending bool `json:"ascending"`
}

// Active reports whether a column is selected.
func (s SortState) Active() bool {
	return s.Column != NoColumn
}

// State is everything derived from user actions. View holds indexes into the
// host's entry collection in display order.
type State struct {
	Term     string
	View     []int
	PageSize pagination.PageSize
	Page     int
	Sort     SortState
}

// TotalPages returns the page count of the current view.
func (s State) TotalPages() int {
	return pagination.TotalPages(len(s.View), s.PageSize)
}

func (s State) clone() State {
	s.View = append([]int(nil), s.View...)
	return s
}

// Reducer applies intents to State for one host. Reduce never modifies its
// input and has no side effects, so it can be exercised without any display.
type Reducer struct {
	host       *Host
	index      searchIndex
	compare    *Comparer
	searchable bool
	sortable   bool
}

// NewReducer prepares a reducer for host. cfg should already be valid; an
// unparseable locale falls back to English collation.
func NewReducer(host *Host, cfg Config) *Reducer {
	if host == nil {
		host = &Host{}
	}
	// LanguageTag returns English alongside any error.
	tag, _ := cfg.LanguageTag()
	return &Reducer{
		host:       host,
		index:      newSearchIndex(host.Entries),
		compare:    NewComparer(tag),
		searchable: cfg.Searchable,
		sortable:   cfg.Sortable,
	}
}

// Initial returns the state right after capture: the whole collection in
// original order, first page, no sort.
func (r *Reducer) Initial(size pagination.PageSize) State {
	return State{
		View:     identity(r.host.Len()),
		PageSize: size,
		Page:     pagination.DefaultPage,
		Sort:     SortState{Column: NoColumn, Ascending: true},
	}
}

// Reduce returns the state after applying in to s. Intents the listing does
// not allow (searching when not searchable, sorting an unsortable column,
// an invalid page size) leave the state unchanged.
func (r *Reducer) Reduce(s State, in Intent) State {
	switch in.Kind {
	case IntentFilter:
		return r.filter(s, in.Term)
	case IntentSort:
		return r.sort(s, in.Column)
	case IntentSetPageSize:
		return r.setPageSize(s, in.PageSize)
	case IntentGoToPage:
		return r.goToPage(s, in.Page)
	default:
		return s
	}
}

// Allowed reports whether in would change anything beyond a no-op.
func (r *Reducer) Allowed(in Intent) bool {
	switch in.Kind {
	case IntentFilter:
		return r.searchable
	case IntentSort:
		return r.sortable && r.host.ColumnSortable(in.Column)
	case IntentSetPageSize:
		return in.PageSize.Valid()
	case IntentGoToPage:
		return true
	default:
		return false
	}
}

// filter rebuilds the view from the collection. The result is in collection
// order; the sort state is kept but not re-applied.
func (r *Reducer) filter(s State, term string) State {
	if !r.Allowed(Filter(term)) {
		return s
	}
	next := s.clone()
	next.Term = term
	next.View = r.index.match(term)
	next.Page = pagination.DefaultPage
	return next
}

func (r *Reducer) sort(s State, column int) State {
	if !r.Allowed(Sort(column)) {
		return s
	}
	next := s.clone()
	if next.Sort.Column == column {
		next.Sort.Ascending = !next.Sort.Ascending
	} else {
		next.Sort = SortState{Column: column, Ascending: true}
	}

	entries := r.host.Entries
	ascending := next.Sort.Ascending
	view := next.View
	sort.SliceStable(view, func(i, j int) bool {
		a := entries[view[i]].Field(column)
		b := entries[view[j]].Field(column)
		if ascending {
			return r.compare.Compare(a, b) < 0
		}
		return r.compare.Compare(b, a) < 0
	})

	next.Page = pagination.DefaultPage
	return next
}

func (r *Reducer) setPageSize(s State, size pagination.PageSize) State {
	if !size.Valid() {
		return s
	}
	next := s.clone()
	next.PageSize = size
	next.Page = pagination.DefaultPage
	return next
}

func (r *Reducer) goToPage(s State, page int) State {
	next := s.clone()
	next.Page = pagination.ClampPage(page, next.TotalPages())
	return next
}
