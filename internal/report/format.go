package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Header is the literal first line of every report
const Header = "Comments to the Author"

// FormatEntry renders one report line according to the fixed editorial
// grammar. The three forms are:
//
//	Page {p}, line {l}, {snippet}: {comment}
//	Page {p}, line {l}: {comment}
//	Page {p}, line {l}: substitute "{old}" for "{new}"
func FormatEntry(e Entry) string {
	line := lineLabel(e.Line)

	if e.kind == KindStrikeout {
		return fmt.Sprintf(`Page %d, line %s: substitute "%s" for "%s"`, e.Page, line, e.OldText, e.NewText)
	}

	if e.Snippet == "" {
		return fmt.Sprintf("Page %d, line %s: %s", e.Page, line, e.Comment)
	}

	return fmt.Sprintf("Page %d, line %s, %s: %s", e.Page, line, e.Snippet, e.Comment)
}

// FormatReport renders the whole report: header line, blank separator, one
// line per entry, trailing newline.
func FormatReport(entries []Entry) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n\n")
	for _, e := range entries {
		b.WriteString(FormatEntry(e))
		b.WriteString("\n")
	}
	return b.String()
}

// lineLabel renders a resolved line number, or the unresolved marker
func lineLabel(line int) string {
	if line == LineUnknown {
		return "unknown"
	}
	return strconv.Itoa(line)
}
