package swatches

import "strings"

// NormalizeHex canonicalizes a candidate hex color to "#RRGGBB" uppercase.
// A single leading '#' is optional and 3-digit shorthand is expanded by
// doubling each digit. Anything else, including non-string input, is rejected.
func NormalizeHex(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}

	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")

	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 || !isHexDigits(s) {
		return "", false
	}
	return "#" + strings.ToUpper(s), true
}

// IsCanonicalHex reports whether s is already in "#RRGGBB" uppercase form.
func IsCanonicalHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
