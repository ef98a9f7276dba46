package report

import "strings"

// ellipsis wraps normalized snippets so truncated quotes read naturally
const ellipsis = "..."

// quotePairs are the enclosing quote characters stripped from fully quoted
// snippets, checked as matching pairs
var quotePairs = [][2]rune{
	{'"', '"'},
	{'\'', '\''},
	{'“', '”'}, // curly double quotes
	{'‘', '’'}, // curly single quotes
}

// NormalizeSnippet converts raw highlighted or struck-out text into its
// presentation form: newlines become spaces, whitespace collapses, enclosing
// quotes are stripped, and the result is wrapped in ellipsis markers.
// Total and idempotent; an empty input stays empty and the caller omits the
// snippet field.
func NormalizeSnippet(s string) string {
	s = collapseWhitespace(s)
	s = stripEnclosingQuotes(s)
	if s == "" {
		return ""
	}
	if isEllipsisWrapped(s) {
		return s
	}
	return ellipsis + s + ellipsis
}

// NormalizeInline makes reviewer comments and replacement strings safe for a
// one-line report entry: newline and whitespace collapse plus trim, without
// quoting or ellipsis treatment.
func NormalizeInline(s string) string {
	return collapseWhitespace(s)
}

// collapseWhitespace replaces newline sequences with spaces, collapses runs
// of whitespace into one space and trims the ends
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripEnclosingQuotes removes quote characters wrapping the entire string.
// Nested quoting is stripped layer by layer so the result is stable under
// repeated normalization.
func stripEnclosingQuotes(s string) string {
	for {
		runes := []rune(s)
		if len(runes) < 2 {
			return s
		}
		stripped := false
		for _, pair := range quotePairs {
			if runes[0] == pair[0] && runes[len(runes)-1] == pair[1] {
				s = strings.TrimSpace(string(runes[1 : len(runes)-1]))
				stripped = true
				break
			}
		}
		if !stripped {
			return s
		}
	}
}

// isEllipsisWrapped reports whether s already carries leading and trailing
// ellipsis markers around actual content
func isEllipsisWrapped(s string) bool {
	return len(s) > 2*len(ellipsis) &&
		strings.HasPrefix(s, ellipsis) &&
		strings.HasSuffix(s, ellipsis)
}
