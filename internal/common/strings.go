package common

import (
	"fmt"
	"strings"
)

// ContainsInsensitive reports whether substr is within s, ignoring case.
func ContainsInsensitive(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Count formats n followed by noun, adding an s when n is not one.
func Count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
