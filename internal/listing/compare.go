package listing

import (
	"cmp"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparer orders two cell texts. If both start with a number they compare
// numerically, otherwise they compare by the collation rules of a locale.
// A Comparer is not safe for concurrent use.
type Comparer struct {
	collator *collate.Collator
}

// NewComparer returns a Comparer for the given BCP 47 locale.
func NewComparer(tag language.Tag) *Comparer {
	return &Comparer{collator: collate.New(tag)}
}

// Compare returns -1, 0 or +1.
func (c *Comparer) Compare(a, b string) int {
	an, aok := ParseLeadingFloat(a)
	bn, bok := ParseLeadingFloat(b)
	if aok && bok {
		return cmp.Compare(an, bn)
	}
	return c.collator.CompareString(a, b)
}

// ParseLeadingFloat parses the longest prefix of s (after leading space)
// that forms a decimal number, so "10%" is 10 and "3 items" is 3. It reports
// false when s does not start with a number.
func ParseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}

	if digits == 0 {
		return 0, false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}

	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		// Overflow still yields a usable ±Inf.
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
