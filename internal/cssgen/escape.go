package cssgen

import (
	"fmt"
	"strings"
)

// EscapeClass escapes a class name for use in a selector, so markup tokens
// like "md:card" become "md\:card". A leading digit is written as a hex
// escape, as in "\32 xl\:card".
func EscapeClass(class string) string {
	var b strings.Builder
	b.Grow(len(class) + 4)

	for i, r := range class {
		switch {
		case r >= '0' && r <= '9':
			if i == 0 || (i == 1 && class[0] == '-') {
				fmt.Fprintf(&b, "\\%x ", r)
				continue
			}
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-', r == '_', r >= 0x80:
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}

	return b.String()
}

// lookupClass returns the class to resolve for a tracked token, dropping a
// known responsive prefix.
func lookupClass(token string) string {
	if _, class, ok := PrefixSelector(token); ok {
		return class
	}
	return token
}
