package render

import (
	"regexp"
	"strings"
)

// User-supplied text goes straight into terminal output, so anything the
// terminal would interpret (ANSI escape sequences, raw control characters)
// must be stripped before rendering. Otherwise a post title could recolor the
// screen or move the cursor.

var csiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)
var oscPattern = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)

// CleanText renders arbitrary user text inert: escape sequences are removed
// and control characters dropped, keeping only newlines and tabs.
func CleanText(s string) string {
	s = csiPattern.ReplaceAllString(s, "")
	s = oscPattern.ReplaceAllString(s, "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CleanInline is CleanText for single-line fields (titles, author names):
// newlines and tabs collapse to spaces so a field can't break the layout.
func CleanInline(s string) string {
	s = CleanText(s)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.Join(strings.Fields(s), " ")
}
