package store

import (
	"fmt"
	"strings"
	"unicode"
)

// Sanitize strips markdown header markers and surrounding whitespace from a
// title. Case and internal spacing are preserved.
func Sanitize(title string) string {
	return strings.TrimSpace(strings.ReplaceAll(title, "#", " "))
}

// Slot returns the normalized storage key for a title: the sanitized title
// with whitespace replaced by underscores, lowercased.
func Slot(title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidArgument, emptyTitleGuidance)
	}

	// A title made only of markers, e.g. "###", maps to the empty slot
	slot := strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, Sanitize(title)))

	if strings.ContainsAny(slot, `/\`) {
		return "", fmt.Errorf("%w: title '%s' cannot contain path separators", ErrInvalidArgument, title)
	}

	return slot, nil
}
