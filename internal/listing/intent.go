package listing

import (
	"fmt"

	"github.com/rshade/listctl/internal/pagination"
)

// IntentKind enumerates the user actions a listing understands.
type IntentKind int

const (
	// IntentFilter replaces the search term.
	IntentFilter IntentKind = iota
	// IntentSort sorts by a column, toggling direction on repeat.
	IntentSort
	// IntentSetPageSize changes the page size.
	IntentSetPageSize
	// IntentGoToPage moves to a page.
	IntentGoToPage
)

// String returns the intent name used in logs.
func (k IntentKind) String() string {
	switch k {
	case IntentFilter:
		return "filter"
	case IntentSort:
		return "sort"
	case IntentSetPageSize:
		return "set_page_size"
	case IntentGoToPage:
		return "go_to_page"
	default:
		return "unknown"
	}
}

// Intent is one user action expressed as data. Only the field matching Kind
// is meaningful.
type Intent struct {
	Kind     IntentKind
	Term     string
	Column   int
	PageSize pagination.PageSize
	Page     int
}

// Filter keeps entries whose row text contains term.
func Filter(term string) Intent {
	return Intent{Kind: IntentFilter, Term: term}
}

// Sort orders the view by column.
func Sort(column int) Intent {
	return Intent{Kind: IntentSort, Column: column}
}

// SetPageSize changes how many entries a page holds.
func SetPageSize(size pagination.PageSize) Intent {
	return Intent{Kind: IntentSetPageSize, PageSize: size}
}

// GoToPage moves to page n, clamped to the available pages.
func GoToPage(n int) Intent {
	return Intent{Kind: IntentGoToPage, Page: n}
}

func (in Intent) String() string {
	switch in.Kind {
	case IntentFilter:
		return fmt.Sprintf("filter(%q)", in.Term)
	case IntentSort:
		return fmt.Sprintf("sort(%d)", in.Column)
	case IntentSetPageSize:
		return fmt.Sprintf("set_page_size(%s)", in.PageSize)
	case IntentGoToPage:
		return fmt.Sprintf("go_to_page(%d)", in.Page)
	default:
		return in.Kind.String()
	}
}
