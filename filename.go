package mdexport

import "strings"

// SafeFileName converts an arbitrary note title into a filesystem-safe file
// name: reserved characters (\ / : * ? " < > |) become '-', whitespace runs
// collapse to a single space, an empty result falls back to "note", and ext
// is appended unless the name already ends with it (compared
// case-insensitively, so the extension is never doubled).
func SafeFileName(title, ext string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, title)
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		name = "note"
	}
	if ext != "" && !strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		name += ext
	}
	return name
}
