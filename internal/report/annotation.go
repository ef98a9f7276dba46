// Package report turns a loaded PDF document into the plain-text,
// line-referenced comment report used for peer-review submission.
package report

import "github.com/reviewtools/redline/internal/pdf"

// Kind is the closed set of annotation categories the report understands.
// Resolution and formatting switch exhaustively over it, so a new kind is a
// compile-time-checked extension point.
type Kind int

const (
	// KindHighlight marks a span of existing text with an attached comment.
	// Underline and squiggly markup are treated the same way.
	KindHighlight Kind = iota
	// KindStrikeout marks deleted text paired with replacement text
	KindStrikeout
	// KindComment is a free-text note with no highlighted span
	KindComment
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindHighlight:
		return "highlight"
	case KindStrikeout:
		return "strikeout"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Annotation is a classified annotation ready for line resolution
type Annotation struct {
	Kind        Kind
	Rects       []pdf.Rect // one or more geometry rectangles
	Text        string     // raw page text under the geometry (highlight/strikeout)
	Comment     string     // reviewer comment, may be empty
	Replacement string     // strikeout substitution text, empty otherwise
}

// Top returns the annotation's vertical anchor: the top edge of its geometry
func (a Annotation) Top() float64 {
	if len(a.Rects) == 0 {
		return 0
	}
	top := a.Rects[0].Y0
	for _, r := range a.Rects[1:] {
		if r.Y0 < top {
			top = r.Y0
		}
	}
	return top
}

// Bottom returns the lowest edge of the annotation's geometry
func (a Annotation) Bottom() float64 {
	if len(a.Rects) == 0 {
		return 0
	}
	bottom := a.Rects[0].Y1
	for _, r := range a.Rects[1:] {
		if r.Y1 > bottom {
			bottom = r.Y1
		}
	}
	return bottom
}

// ClassifySubtype maps a PDF annotation subtype to a report kind. The second
// return is false for subtypes the report ignores (stamps, ink, links...).
func ClassifySubtype(subtype string) (Kind, bool) {
	switch subtype {
	case "Highlight", "Underline", "Squiggly":
		return KindHighlight, true
	case "StrikeOut":
		return KindStrikeout, true
	case "Text", "FreeText":
		return KindComment, true
	default:
		return 0, false
	}
}
