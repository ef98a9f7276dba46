package report

import (
	"sort"

	"github.com/reviewtools/redline/internal/lines"
)

// LineUnknown is the sentinel line number for annotations that could not be
// anchored (a page with no usable line mapping at all). Such entries are
// reported with a "line unknown" marker instead of being dropped, so
// reviewers are never silently missing a comment.
const LineUnknown = 0

// Entry is one resolved annotation, ready for formatting
type Entry struct {
	Page    int
	Line    int    // LineUnknown when no anchor existed
	Snippet string // normalized highlighted text, empty to omit
	Comment string
	OldText string // substitution pair, both set for strikeouts
	NewText string

	kind Kind
	top  float64 // geometry top, for stable ordering within a line
}

// Resolver assigns each extracted annotation a line number from the page's
// active line source
type Resolver struct{}

// NewResolver creates an annotation resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolvePage maps every annotation to a report entry using the page's line
// source. Entries come back sorted by (line, geometry top), matching the
// final report order within the page.
func (r *Resolver) ResolvePage(pageNum int, annots []Annotation, src lines.Source) []Entry {
	entries := make([]Entry, 0, len(annots))
	for _, annot := range annots {
		line := LineUnknown
		if n, ok := src.LineAt(annot.Top()); ok {
			line = n
		}

		entry := Entry{
			Page: pageNum,
			Line: line,
			kind: annot.Kind,
			top:  annot.Top(),
		}

		switch annot.Kind {
		case KindHighlight:
			entry.Snippet = NormalizeSnippet(annot.Text)
			entry.Comment = NormalizeInline(annot.Comment)
		case KindStrikeout:
			entry.OldText = NormalizeSnippet(annot.Text)
			entry.NewText = NormalizeInline(annot.Replacement)
		case KindComment:
			entry.Comment = NormalizeInline(annot.Comment)
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Line != entries[j].Line {
			return entries[i].Line < entries[j].Line
		}
		return entries[i].top < entries[j].top
	})

	return entries
}
