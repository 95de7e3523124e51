package pagination

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Page size defaults and labels.
const (
	DefaultPageSize = 10
	MinPageSize     = 1
	DefaultPage     = 1
	MinPage         = 1
	UnboundedLabel  = "All"
)

// Common validation errors.
var (
	ErrInvalidPageSize = errors.New("page size must be a positive integer or \"All\"")
	ErrEmptyOptions    = errors.New("page size options cannot be empty")
)

// PageSize is either a positive number of entries per page or Unbounded.
// The zero value is invalid.
type PageSize struct {
	n         int
	unbounded bool
}

// Unbounded shows every filtered entry on one page.
//
//nolint:gochecknoglobals // Immutable marker value.
var Unbounded = PageSize{unbounded: true}

// Size returns a bounded page size. Non-positive values produce an invalid
// PageSize that Valid reports as false.
func Size(n int) PageSize {
	return PageSize{n: n}
}

// DefaultPageSizeOptions returns the selectable sizes offered when none are configured.
func DefaultPageSizeOptions() []PageSize {
	return []PageSize{Size(5), Size(10), Size(50), Size(100), Unbounded} //nolint:mnd // Default option set.
}

// ParsePageSize parses a positive integer or "All" / "unbounded" (any case).
func ParsePageSize(s string) (PageSize, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "all", "unbounded":
		return Unbounded, nil
	case "":
		return PageSize{}, fmt.Errorf("%w: empty value", ErrInvalidPageSize)
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < MinPageSize {
		return PageSize{}, fmt.Errorf("%w: got %q", ErrInvalidPageSize, s)
	}
	return Size(n), nil
}

// IsUnbounded reports whether p is the Unbounded marker.
func (p PageSize) IsUnbounded() bool {
	return p.unbounded
}

// Valid reports whether p is Unbounded or a positive size.
func (p PageSize) Valid() bool {
	return p.unbounded || p.n >= MinPageSize
}

// Int returns the bounded size, or 0 for Unbounded.
func (p PageSize) Int() int {
	if p.unbounded {
		return 0
	}
	return p.n
}

// Resolve returns the effective number of entries per page for a view of
// length total. Unbounded resolves to total, and never below 1.
func (p PageSize) Resolve(total int) int {
	if p.unbounded {
		if total < MinPageSize {
			return MinPageSize
		}
		return total
	}
	if p.n < MinPageSize {
		return MinPageSize
	}
	return p.n
}

// String returns the label shown in size selectors.
func (p PageSize) String() string {
	if p.unbounded {
		return UnboundedLabel
	}
	return strconv.Itoa(p.n)
}

// MarshalJSON encodes bounded sizes as numbers and Unbounded as "All".
func (p PageSize) MarshalJSON() ([]byte, error) {
	if p.unbounded {
		return json.Marshal(UnboundedLabel)
	}
	return json.Marshal(p.n)
}

// UnmarshalJSON accepts a number or a string understood by ParsePageSize.
func (p *PageSize) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		parsed, parseErr := ParsePageSize(strconv.Itoa(n))
		if parseErr != nil {
			return parseErr
		}
		*p = parsed
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPageSize, string(data))
	}
	parsed, err := ParsePageSize(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML encodes bounded sizes as integers and Unbounded as "All".
func (p PageSize) MarshalYAML() (interface{}, error) {
	if p.unbounded {
		return UnboundedLabel, nil
	}
	return p.n, nil
}

// UnmarshalYAML accepts an integer or a string understood by ParsePageSize.
func (p *PageSize) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrInvalidPageSize, node.Line)
	}
	parsed, err := ParsePageSize(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = parsed
	return nil
}

// ValidateOptions checks that a page-size option list is usable.
func ValidateOptions(options []PageSize) error {
	if len(options) == 0 {
		return ErrEmptyOptions
	}
	for i, opt := range options {
		if !opt.Valid() {
			return fmt.Errorf("option %d: %w", i, ErrInvalidPageSize)
		}
	}
	return nil
}

// IndexOf returns the position of size in options, or -1.
func IndexOf(options []PageSize, size PageSize) int {
	for i, opt := range options {
		if opt == size {
			return i
		}
	}
	return -1
}
