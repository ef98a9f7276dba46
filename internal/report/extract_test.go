package report

import (
	"testing"

	"github.com/reviewtools/redline/internal/lines"
	"github.com/reviewtools/redline/internal/pdf"
)

func run(text string, x0, y0, x1, y1 float64) pdf.TextRun {
	return pdf.TextRun{
		BBox:     pdf.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1},
		Baseline: y1,
		FontSize: y1 - y0,
		Text:     text,
	}
}

func TestClassifySubtype(t *testing.T) {
	tests := []struct {
		subtype string
		want    Kind
		ok      bool
	}{
		{"Highlight", KindHighlight, true},
		{"Underline", KindHighlight, true},
		{"Squiggly", KindHighlight, true},
		{"StrikeOut", KindStrikeout, true},
		{"Text", KindComment, true},
		{"FreeText", KindComment, true},
		{"Ink", 0, false},
		{"Stamp", 0, false},
		{"Popup", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ClassifySubtype(tt.subtype)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ClassifySubtype(%q) = (%v, %v), want (%v, %v)", tt.subtype, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractHighlightTakesTextUnderQuads(t *testing.T) {
	e := NewExtractor()
	header := lines.NewHeaderRegion(1.5)

	page := pdf.Page{
		Number: 2,
		Width:  612,
		Height: 792,
		Runs: []pdf.TextRun{
			run("the catalytic mechanism", 100, 100, 240, 112),
			run("requires further clarification", 244, 100, 420, 112),
			run("as shown in Fig. 3", 100, 114, 220, 126), // outside the quad
		},
		Annots: []pdf.RawAnnotation{
			{
				Subtype:  "Highlight",
				Rect:     pdf.Rect{X0: 98, Y0: 98, X1: 422, Y1: 113},
				Quads:    []pdf.Rect{{X0: 98, Y0: 98, X1: 422, Y1: 113}},
				Contents: "unclear phrasing",
			},
		},
	}

	annots := e.Extract(page, header)
	if len(annots) != 1 {
		t.Fatalf("Expected 1 annotation, got %d", len(annots))
	}

	a := annots[0]
	if a.Kind != KindHighlight {
		t.Errorf("Kind = %v, want %v", a.Kind, KindHighlight)
	}
	if a.Text != "the catalytic mechanism requires further clarification" {
		t.Errorf("Text = %q", a.Text)
	}
	if a.Comment != "unclear phrasing" {
		t.Errorf("Comment = %q, want %q", a.Comment, "unclear phrasing")
	}
}

func TestExtractStrikeoutWithReplacement(t *testing.T) {
	e := NewExtractor()
	header := lines.NewHeaderRegion(1.5)

	page := pdf.Page{
		Number: 4,
		Width:  612,
		Height: 792,
		Runs: []pdf.TextRun{
			run("protein dimer", 150, 300, 230, 312),
		},
		Annots: []pdf.RawAnnotation{
			{
				Subtype:  "StrikeOut",
				Rect:     pdf.Rect{X0: 148, Y0: 298, X1: 232, Y1: 313},
				Contents: "homodimer",
			},
		},
	}

	annots := e.Extract(page, header)
	if len(annots) != 1 {
		t.Fatalf("Expected 1 annotation, got %d", len(annots))
	}

	a := annots[0]
	if a.Kind != KindStrikeout {
		t.Errorf("Kind = %v, want %v", a.Kind, KindStrikeout)
	}
	if a.Text != "protein dimer" {
		t.Errorf("Text = %q, want %q", a.Text, "protein dimer")
	}
	if a.Replacement != "homodimer" {
		t.Errorf("Replacement = %q, want %q", a.Replacement, "homodimer")
	}
}

func TestExtractStrikeoutWithoutReplacementDegrades(t *testing.T) {
	e := NewExtractor()
	header := lines.NewHeaderRegion(1.5)

	page := pdf.Page{
		Number: 1,
		Width:  612,
		Height: 792,
		Runs: []pdf.TextRun{
			run("redundant sentence", 100, 200, 220, 212),
		},
		Annots: []pdf.RawAnnotation{
			{
				Subtype: "StrikeOut",
				Rect:    pdf.Rect{X0: 98, Y0: 198, X1: 222, Y1: 213},
			},
		},
	}

	annots := e.Extract(page, header)
	if len(annots) != 1 {
		t.Fatalf("Expected 1 annotation, got %d", len(annots))
	}
	if annots[0].Kind != KindHighlight {
		t.Errorf("Expected strikeout without replacement to degrade to a highlight, got %v", annots[0].Kind)
	}
	if annots[0].Text != "redundant sentence" {
		t.Errorf("Text = %q", annots[0].Text)
	}
}

func TestExtractDiscardsHeaderAnnotations(t *testing.T) {
	e := NewExtractor()
	header := lines.NewHeaderRegion(1.5) // ~42.5pt

	page := pdf.Page{
		Number: 1,
		Width:  612,
		Height: 792,
		Annots: []pdf.RawAnnotation{
			{
				Subtype:  "Text",
				Rect:     pdf.Rect{X0: 100, Y0: 5, X1: 120, Y1: 25},
				Contents: "note on the running header",
			},
			{
				// Straddles the header cutoff: kept
				Subtype:  "Text",
				Rect:     pdf.Rect{X0: 100, Y0: 30, X1: 120, Y1: 60},
				Contents: "note on the first body line",
			},
		},
	}

	annots := e.Extract(page, header)
	if len(annots) != 1 {
		t.Fatalf("Expected 1 annotation, got %d", len(annots))
	}
	if annots[0].Comment != "note on the first body line" {
		t.Errorf("Comment = %q", annots[0].Comment)
	}
}

func TestExtractIgnoresUnknownSubtypes(t *testing.T) {
	e := NewExtractor()
	header := lines.NewHeaderRegion(1.5)

	page := pdf.Page{
		Number: 1,
		Width:  612,
		Height: 792,
		Annots: []pdf.RawAnnotation{
			{Subtype: "Ink", Rect: pdf.Rect{X0: 100, Y0: 100, X1: 200, Y1: 120}},
			{Subtype: "Stamp", Rect: pdf.Rect{X0: 100, Y0: 200, X1: 200, Y1: 220}},
			{Subtype: "Square", Rect: pdf.Rect{X0: 100, Y0: 300, X1: 200, Y1: 320}},
		},
	}

	if annots := e.Extract(page, header); len(annots) != 0 {
		t.Errorf("Expected unsupported subtypes to be discarded, got %d annotations", len(annots))
	}
}

func TestTextUnderJoinsSameLineWithoutSpuriousSpaces(t *testing.T) {
	// "sub" and "script" abut within a word and must not gain a space;
	// "word" sits a word gap away and must
	runs := []pdf.TextRun{
		run("sub", 100, 100, 118, 112),
		run("script", 118.5, 100, 150, 112),
		run("word", 160, 100, 190, 112),
	}
	rects := []pdf.Rect{{X0: 90, Y0: 98, X1: 200, Y1: 113}}

	got := textUnder(runs, rects)
	want := "subscript word"
	if got != want {
		t.Errorf("textUnder() = %q, want %q", got, want)
	}
}

func TestTextUnderSpansMultipleLines(t *testing.T) {
	runs := []pdf.TextRun{
		run("end of first", 300, 100, 400, 112),
		run("start of second", 100, 114, 220, 126),
	}
	rects := []pdf.Rect{
		{X0: 298, Y0: 98, X1: 402, Y1: 113},
		{X0: 98, Y0: 112, X1: 222, Y1: 127},
	}

	got := textUnder(runs, rects)
	want := "end of first start of second"
	if got != want {
		t.Errorf("textUnder() = %q, want %q", got, want)
	}
}

func TestAnnotationTopBottom(t *testing.T) {
	a := Annotation{Rects: []pdf.Rect{
		{X0: 100, Y0: 114, X1: 400, Y1: 126},
		{X0: 100, Y0: 100, X1: 400, Y1: 112},
	}}

	if got := a.Top(); got != 100 {
		t.Errorf("Top() = %g, want 100", got)
	}
	if got := a.Bottom(); got != 126 {
		t.Errorf("Bottom() = %g, want 126", got)
	}
}
