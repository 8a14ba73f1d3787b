package render

import "strings"

// SplitBullets turns free-text details into list items. Segments are split
// on newlines, "•" and "-", trimmed, and dropped when empty.
//
// A bare "-" is a delimiter everywhere, so hyphenated words and ranges such as
// "2019-2023" are split too. Writers who need a literal hyphen should use an
// en dash.
func SplitBullets(details string) []string {
	parts := strings.FieldsFunc(details, func(r rune) bool {
		return r == '\n' || r == '•' || r == '-'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
