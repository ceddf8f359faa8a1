package str

import (
	"iter"
	"strings"
	"unicode"

	"github.com/ib-77/fluff/pkg/fluff/object"
)

func IsNullOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// IsNullOrWhiteSpace also reports true for strings made only of Unicode spaces
func IsNullOrWhiteSpace(s *string) bool {
	if s == nil {
		return true
	}
	return strings.IndexFunc(*s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// Safe dereferences s, returning "" for nil
func Safe(s *string) string {
	return object.SelectOrDefault(s, func(p *string) string { return *p })
}

// Runes yields the runes currently held by b
func Runes(b *strings.Builder) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		if b == nil {
			return
		}
		for _, r := range b.String() {
			if !yield(r) {
				return
			}
		}
	}
}
