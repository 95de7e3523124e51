package listing

import (
	"strings"

	"golang.org/x/text/cases"
)

// searchIndex holds the case-folded full-row text of every entry, computed
// once when the collection is captured.
type searchIndex []string

func newSearchIndex(entries []Entry) searchIndex {
	caser := cases.Fold()
	idx := make(searchIndex, len(entries))
	for i, e := range entries {
		idx[i] = caser.String(e.Text())
	}
	return idx
}

// match returns, in collection order, the indexes of entries whose row text
// contains term ignoring case. An empty term matches everything.
func (idx searchIndex) match(term string) []int {
	if term == "" {
		return identity(len(idx))
	}
	folded := cases.Fold().String(term)
	out := make([]int, 0, len(idx))
	for i, text := range idx {
		if strings.Contains(text, folded) {
			out = append(out, i)
		}
	}
	return out
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
