package cli

import (
	"errors"
	"strings"
)

// Sort directions accepted after a colon in --sort.
const (
	sortOrderAsc  = "asc"
	sortOrderDesc = "desc"
)

// ErrEmptySortField is returned when --sort names only a direction.
var ErrEmptySortField = errors.New("sort field cannot be empty")

// parseSort splits a --sort value of the form "field" or "field:order".
// A suffix that is not asc or desc is treated as part of the column title,
// so titles containing colons still work.
func parseSort(s string) (field string, desc bool, err error) {
	field = strings.TrimSpace(s)
	if i := strings.LastIndex(field, ":"); i >= 0 {
		switch strings.ToLower(strings.TrimSpace(field[i+1:])) {
		case sortOrderAsc:
			field = strings.TrimSpace(field[:i])
		case sortOrderDesc:
			field, desc = strings.TrimSpace(field[:i]), true
		}
	}
	if field == "" {
		return "", false, ErrEmptySortField
	}
	return field, desc, nil
}
