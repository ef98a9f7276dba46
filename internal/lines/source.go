package lines

// SourceKind identifies how a page's line numbers were obtained
type SourceKind int

const (
	// SourcePrinted means line numbers were read from printed margin numerals
	SourcePrinted SourceKind = iota
	// SourceReconstructed means line numbers were synthesized from body text layout
	SourceReconstructed
)

// String returns a human-readable name for the source kind
func (k SourceKind) String() string {
	switch k {
	case SourcePrinted:
		return "printed"
	case SourceReconstructed:
		return "reconstructed"
	default:
		return "unknown"
	}
}

// Anchor binds a vertical position to a resolved line number
type Anchor struct {
	Y    float64
	Line int
}

// Source maps a vertical position to a manuscript line number. Exactly one
// Source is active per page; it is built before annotation resolution and
// never mutated afterward.
type Source interface {
	// Kind reports how the line numbers were obtained
	Kind() SourceKind

	// LineAt returns the line number of the anchor nearest to y by absolute
	// vertical distance, ties resolving to the anchor above (the smaller
	// line number). The second return is false when the source has no
	// anchors at all.
	LineAt(y float64) (int, bool)

	// Anchors returns the anchor table, ascending in Y
	Anchors() []Anchor
}

// anchorTable is the shared Source implementation. Anchors are strictly
// increasing in Y and non-decreasing in line number.
type anchorTable struct {
	kind    SourceKind
	anchors []Anchor
}

func (t *anchorTable) Kind() SourceKind {
	return t.kind
}

func (t *anchorTable) Anchors() []Anchor {
	return t.anchors
}

func (t *anchorTable) LineAt(y float64) (int, bool) {
	if len(t.anchors) == 0 {
		return 0, false
	}

	best := t.anchors[0]
	bestDist := abs(y - best.Y)
	for _, a := range t.anchors[1:] {
		// Strict comparison keeps the earlier (upper) anchor on ties
		if d := abs(y - a.Y); d < bestDist {
			best = a
			bestDist = d
		}
	}

	return best.Line, true
}

// abs returns the absolute value of a float64
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
