package jsearch

import "strings"

// EscapeKey escapes characters that have special meaning in jsearch paths
// so the key is treated as a literal member name. Useful when keys contain
// dots, brackets, wildcards or optional markers.
// Example: EscapeKey("foo.bar[0]") -> "foo\\.bar\\[0\\]".
func EscapeKey(key string) string {
	needsEscape := false
	for i := 0; i < len(key); i++ {
		if isSpecialPathChar(key[i]) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return key
	}

	var b strings.Builder
	b.Grow(len(key) * 2)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if isSpecialPathChar(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// BuildPath joins literal member names into a path expression after
// escaping each one. Example: BuildPath("config", "foo.bar") -> "config.foo\\.bar".
func BuildPath(keys ...string) string {
	if len(keys) == 0 {
		return ""
	}

	escaped := make([]string, len(keys))
	for i, k := range keys {
		escaped[i] = EscapeKey(k)
	}
	return strings.Join(escaped, ".")
}

func isSpecialPathChar(c byte) bool {
	switch c {
	case '\\', '.', '[', ']', '*', '?':
		return true
	}
	return false
}
