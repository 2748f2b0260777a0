package labelspec

import (
	"fmt"
	"strings"
)

// Validate checks the batch before any rendering work starts.
func (b *Batch) Validate() error {
	if b.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", b.Count)
	}
	if b.Start < 0 {
		return fmt.Errorf("start must not be negative, got %d", b.Start)
	}
	if b.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	for _, r := range b.Prefix {
		if !isURLSafe(r) {
			return fmt.Errorf("prefix %q contains %q; only letters, digits and -._~ are allowed", b.Prefix, r)
		}
	}
	return nil
}

// isURLSafe reports whether r is an RFC 3986 unreserved character.
// Payloads are built by plain concatenation, so the prefix must need no
// escaping.
func isURLSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("-._~", r)
}
