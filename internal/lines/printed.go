package lines

import (
	"sort"
	"strconv"
	"strings"

	"github.com/reviewtools/redline/internal/pdf"
)

// PrintedDetector scans the left margin band of a page for journal-style
// printed line numbers.
type PrintedDetector struct {
	marginFrac float64 // fraction of page width treated as margin band
	step       int     // expected increment between consecutive numerals
	minRun     int     // minimum anchors advancing by step to trust detection
}

// NewPrintedDetector creates a detector with the given policy knobs
func NewPrintedDetector(marginFrac float64, step, minRun int) *PrintedDetector {
	return &PrintedDetector{
		marginFrac: marginFrac,
		step:       step,
		minRun:     minRun,
	}
}

// candidate is a numeral token found in the margin band
type candidate struct {
	line int
	y    float64
}

// Detect scans the page's body text runs for printed line numbers. The second
// return is false when no reliable numbering was found; that is the signal to
// fall back to reconstruction, never an error.
func (d *PrintedDetector) Detect(page pdf.Page, header HeaderRegion) (Source, bool) {
	marginX := page.Width * d.marginFrac

	var cands []candidate
	for _, run := range page.Runs {
		if header.Contains(run.BBox.Y0) {
			continue
		}
		// The whole run box must sit inside the margin band
		if run.BBox.X1 > marginX {
			continue
		}
		text := strings.TrimSpace(run.Text)
		if !isNumeral(text) {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			continue
		}
		cands = append(cands, candidate{
			line: n,
			y:    (run.BBox.Y0 + run.BBox.Y1) / 2,
		})
	}

	anchors := buildAnchors(cands)
	if !d.consistent(anchors) {
		return nil, false
	}

	return &anchorTable{kind: SourcePrinted, anchors: anchors}, true
}

// buildAnchors averages the positions of duplicate numerals (a number printed
// twice anchors at its mean height) and sorts the result top to bottom.
func buildAnchors(cands []candidate) []Anchor {
	if len(cands) == 0 {
		return nil
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, c := range cands {
		sums[c.line] += c.y
		counts[c.line]++
	}

	anchors := make([]Anchor, 0, len(sums))
	for line, sum := range sums {
		anchors = append(anchors, Anchor{
			Y:    sum / float64(counts[line]),
			Line: line,
		})
	}

	sort.Slice(anchors, func(i, j int) bool {
		return anchors[i].Y < anchors[j].Y
	})

	return anchors
}

// consistent applies the confidence check: numerals must strictly increase
// top to bottom, and at least minRun consecutive anchors must advance by
// exactly the configured step.
func (d *PrintedDetector) consistent(anchors []Anchor) bool {
	if len(anchors) < d.minRun {
		return false
	}

	longest, current := 1, 1
	for i := 1; i < len(anchors); i++ {
		if anchors[i].Line <= anchors[i-1].Line {
			return false
		}
		if anchors[i].Y <= anchors[i-1].Y {
			// Averaged duplicates collapsed onto the same height; the
			// position table is unusable
			return false
		}
		if anchors[i].Line-anchors[i-1].Line == d.step {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}

	return longest >= d.minRun
}

// isNumeral reports whether s is a non-empty string of ASCII digits
func isNumeral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
