package handbook

import (
	"strconv"
	"strings"
	"unicode"
)

// Anchor creates a URL-safe anchor from a heading.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func Anchor(heading string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(heading) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// AnchorSet hands out identifiers that are unique within one page.
// The zero value is ready to use.
type AnchorSet struct {
	seen map[string]bool
}

// Unique returns id if it has not been handed out before. Otherwise it
// returns id with the smallest numeric suffix ("-1", "-2", ...) that is
// still free.
func (s *AnchorSet) Unique(id string) string {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}

	anchor := id
	for n := 1; s.seen[anchor]; n++ {
		anchor = id + "-" + strconv.Itoa(n)
	}
	s.seen[anchor] = true
	return anchor
}
