package rfc2047

import "strings"

// normalize cleans up an assembled header value: leading and trailing
// whitespace is dropped, every internal whitespace run becomes a single
// space, and any remaining ASCII control character is removed.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isFoldingSpace(c) || c == '\v' || c == '\f':
			space = true
		case isControl(c):
			// dropped
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteByte(c)
		}
	}
	return b.String()
}
