package lines

import (
	"sort"

	"github.com/reviewtools/redline/internal/pdf"
)

// fallbackLineHeight is used when a page's runs carry no usable heights
const fallbackLineHeight = 12.0

// Reconstructor synthesizes line numbers for pages without printed margin
// numerals by clustering body text runs into visual lines.
type Reconstructor struct {
	clusterFactor float64 // gap threshold as a fraction of the estimated line height
}

// NewReconstructor creates a reconstructor with the given clustering factor
func NewReconstructor(clusterFactor float64) *Reconstructor {
	return &Reconstructor{
		clusterFactor: clusterFactor,
	}
}

// Reconstruct clusters the page's body text runs into lines and numbers them
// sequentially from 1, top to bottom. It cannot fail: a page without body
// runs yields a Source with no anchors, and every body run belongs to
// exactly one reconstructed line. Anchors sit at the mean top edge of each
// cluster, matching where annotation rectangles start.
func (r *Reconstructor) Reconstruct(page pdf.Page, header HeaderRegion) Source {
	body := make([]pdf.TextRun, 0, len(page.Runs))
	for _, run := range page.Runs {
		if header.Contains(run.BBox.Y0) {
			continue
		}
		body = append(body, run)
	}

	sort.Slice(body, func(i, j int) bool {
		if body[i].BBox.Y0 != body[j].BBox.Y0 {
			return body[i].BBox.Y0 < body[j].BBox.Y0
		}
		return body[i].BBox.X0 < body[j].BBox.X0
	})

	threshold := r.clusterFactor * estimateLineHeight(body)

	var anchors []Anchor
	var clusterSum float64
	var clusterSize int
	var lastBaseline float64

	flush := func() {
		if clusterSize == 0 {
			return
		}
		anchors = append(anchors, Anchor{
			Y:    clusterSum / float64(clusterSize),
			Line: len(anchors) + 1,
		})
		clusterSum, clusterSize = 0, 0
	}

	for i, run := range body {
		if i > 0 && run.Baseline-lastBaseline >= threshold {
			flush()
		}
		clusterSum += run.BBox.Y0
		clusterSize++
		lastBaseline = run.Baseline
	}
	flush()

	return &anchorTable{kind: SourceReconstructed, anchors: anchors}
}

// estimateLineHeight derives a typical line height from the run set: the
// median run height, which tracks the dominant body font size.
func estimateLineHeight(runs []pdf.TextRun) float64 {
	heights := make([]float64, 0, len(runs))
	for _, run := range runs {
		if h := run.BBox.Height(); h > 0 {
			heights = append(heights, h)
		}
	}
	if len(heights) == 0 {
		return fallbackLineHeight
	}

	sort.Float64s(heights)
	return heights[len(heights)/2]
}
