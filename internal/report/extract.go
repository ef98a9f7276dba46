package report

import (
	"sort"
	"strings"

	"github.com/reviewtools/redline/internal/lines"
	"github.com/reviewtools/redline/internal/pdf"
)

// wordGapFactor is the horizontal gap, as a fraction of font size, beyond
// which two adjacent runs on the same visual line get a separating space
const wordGapFactor = 0.25

// sameLineTolerance is the vertical baseline distance within which two runs
// are considered part of the same visual line when joining extracted text
const sameLineTolerance = 2.0

// Extractor classifies raw page annotations and pulls the page text under
// their geometry. Pure: it never mutates the page.
type Extractor struct{}

// NewExtractor creates an annotation extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract classifies every raw annotation on the page, discarding kinds the
// report does not handle and annotations whose geometry lies entirely inside
// the header region.
func (e *Extractor) Extract(page pdf.Page, header lines.HeaderRegion) []Annotation {
	var annots []Annotation
	for _, raw := range page.Annots {
		kind, ok := ClassifySubtype(raw.Subtype)
		if !ok {
			continue
		}

		rects := raw.Quads
		if len(rects) == 0 {
			rects = []pdf.Rect{raw.Rect}
		}

		annot := Annotation{
			Kind:  kind,
			Rects: rects,
		}
		if header.ContainsRect(annot.Top(), annot.Bottom()) {
			continue
		}

		comment := strings.TrimSpace(raw.Contents)

		switch kind {
		case KindHighlight:
			annot.Text = textUnder(page.Runs, rects)
			annot.Comment = comment
		case KindStrikeout:
			annot.Text = textUnder(page.Runs, rects)
			if comment != "" {
				annot.Replacement = comment
			} else {
				// A strikeout without replacement text degrades to a
				// highlight-style entry
				annot.Kind = KindHighlight
			}
		case KindComment:
			annot.Comment = comment
		}

		annots = append(annots, annot)
	}

	return annots
}

// textUnder concatenates, in reading order, the text runs intersecting any of
// the given rectangles. Runs on the same visual line are joined with a space
// only when a word-sized horizontal gap separates them.
func textUnder(runs []pdf.TextRun, rects []pdf.Rect) string {
	var covered []pdf.TextRun
	for _, run := range runs {
		for _, r := range rects {
			if run.BBox.Intersects(r) {
				covered = append(covered, run)
				break
			}
		}
	}
	if len(covered) == 0 {
		return ""
	}

	sort.Slice(covered, func(i, j int) bool {
		if covered[i].Baseline != covered[j].Baseline {
			return covered[i].Baseline < covered[j].Baseline
		}
		return covered[i].BBox.X0 < covered[j].BBox.X0
	})

	var b strings.Builder
	for i, run := range covered {
		if i > 0 {
			b.WriteString(separator(covered[i-1], run))
		}
		b.WriteString(run.Text)
	}

	return b.String()
}

// separator decides what goes between two consecutive covered runs
func separator(prev, next pdf.TextRun) string {
	if next.Baseline-prev.Baseline > sameLineTolerance {
		return " " // line break in the source layout
	}
	gap := next.BBox.X0 - prev.BBox.X1
	size := prev.FontSize
	if size <= 0 {
		size = next.FontSize
	}
	if size > 0 && gap > wordGapFactor*size {
		return " "
	}
	return ""
}
