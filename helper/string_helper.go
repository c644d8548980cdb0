package helper

import (
	"strings"
	"unicode"
)

// Underscore converts a CamelCase struct field name to snake_case, matching
// the JSON field names used in request bodies.
func Underscore(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// No separator inside an acronym run ("PostID" -> "post_id")
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
