package pagination

// Meta describes the visible window of a paginated view.
//
//nolint:revive // Meta is the canonical name for this exported type.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	Start       int  `json:"start"        yaml:"start"`
	End         int  `json:"end"          yaml:"end"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// TotalPages returns max(1, ceil(totalItems/size)) for the effective size.
// Unbounded and empty views always have exactly one page.
func TotalPages(totalItems int, size PageSize) int {
	if size.IsUnbounded() || totalItems <= 0 {
		return 1
	}
	perPage := size.Resolve(totalItems)
	pages := totalItems / perPage
	if totalItems%perPage > 0 {
		pages++
	}
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage restricts page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < MinPage {
		totalPages = MinPage
	}
	switch {
	case page < MinPage:
		return MinPage
	case page > totalPages:
		return totalPages
	default:
		return page
	}
}

// NewMeta resolves the window for page of a view holding totalItems entries.
// The page is clamped before Start and End are computed, so the returned
// window is always within [0, totalItems].
func NewMeta(size PageSize, page, totalItems int) Meta {
	if totalItems < 0 {
		totalItems = 0
	}
	totalPages := TotalPages(totalItems, size)
	currentPage := ClampPage(page, totalPages)
	perPage := size.Resolve(totalItems)

	start := (currentPage - 1) * perPage
	end := start + perPage
	if end > totalItems {
		end = totalItems
	}
	if start > end {
		start = end
	}

	return Meta{
		CurrentPage: currentPage,
		PageSize:    perPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		Start:       start,
		End:         end,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}
