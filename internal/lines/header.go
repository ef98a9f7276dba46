// Package lines resolves vertical page positions to manuscript line numbers.
// Two strategies exist: printed line numbers detected in the left margin, and
// a fallback that reconstructs body lines from text run positions. Both
// produce a Source that maps a y coordinate to a line number.
package lines

// PointsPerCM converts centimeters to PDF user-space units (points)
const PointsPerCM = 72.0 / 2.54

// CentimetersToPoints converts a length in centimeters to page units
func CentimetersToPoints(cm float64) float64 {
	return cm * PointsPerCM
}

// HeaderRegion is the band at the top of a page that is excluded from line
// counting. Running headers and page numbers live here and must never shift
// body line numbering.
type HeaderRegion struct {
	Height float64 // band height in page units, measured from the top edge
}

// NewHeaderRegion builds a header region from a height in centimeters
func NewHeaderRegion(marginCM float64) HeaderRegion {
	return HeaderRegion{Height: CentimetersToPoints(marginCM)}
}

// Contains reports whether a vertical position lies inside the header band
func (h HeaderRegion) Contains(y float64) bool {
	return y < h.Height
}

// ContainsRect reports whether a rectangle lies entirely inside the header band
func (h HeaderRegion) ContainsRect(top, bottom float64) bool {
	return top < h.Height && bottom <= h.Height
}

// CoversPage reports whether the header band swallows the whole page, in
// which case no body content exists and resolution yields zero entries
func (h HeaderRegion) CoversPage(pageHeight float64) bool {
	return h.Height >= pageHeight
}
