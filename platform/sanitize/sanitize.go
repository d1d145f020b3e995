// Package sanitize provides character-level text filters.
// This is part of the platform layer and contains no business logic.
package sanitize

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Keep returns s with every character not in allowed removed. The relative
// order of the kept characters is preserved. allowed must be ASCII; invalid
// UTF-8 in s is always dropped.
func Keep(s, allowed string) string {
	if s == "" {
		return ""
	}
	t := runes.Remove(runes.Predicate(func(r rune) bool {
		return !isAllowed(r, allowed)
	}))
	out, _, err := transform.String(t, s)
	if err != nil {
		return keepBytes(s, allowed)
	}
	return out
}

// Contains reports whether every byte of s is in allowed.
func Contains(s, allowed string) bool {
	for i := 0; i < len(s); i++ {
		if !isAllowed(rune(s[i]), allowed) {
			return false
		}
	}
	return true
}

func isAllowed(r rune, allowed string) bool {
	return r < 0x80 && strings.IndexByte(allowed, byte(r)) >= 0
}

// keepBytes is the byte-wise filter used if the transformer reports an error.
func keepBytes(s, allowed string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isAllowed(rune(s[i]), allowed) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
