package pdf

// Geometry uses top-down page coordinates: y grows downward and y = 0 is the
// top edge of the page. PDF native coordinates are bottom-up; the document
// loader flips them once so every downstream component can reason about
// "above" and "below" the way a reader does.

// Point represents a position on a page
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect represents a rectangular area on a page.
// Y0 is the top edge, Y1 the bottom edge, so Y0 <= Y1 always holds.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Top returns the y coordinate of the upper edge
func (r Rect) Top() float64 {
	return r.Y0
}

// Intersects reports whether two rectangles share any area
func (r Rect) Intersects(other Rect) bool {
	return r.X0 < other.X1 && other.X0 < r.X1 &&
		r.Y0 < other.Y1 && other.Y0 < r.Y1
}

// TextRun is a positioned fragment of page text produced by the parser
type TextRun struct {
	BBox     Rect    `json:"bbox"`
	Baseline float64 `json:"baseline"` // y coordinate of the text baseline
	FontSize float64 `json:"font_size"`
	Text     string  `json:"text"`
}

// RawAnnotation is an annotation object as found in the page dictionary,
// before classification. Quads is empty for annotations without QuadPoints.
type RawAnnotation struct {
	Subtype  string `json:"subtype"`
	Rect     Rect   `json:"rect"`
	Quads    []Rect `json:"quads,omitempty"`
	Contents string `json:"contents,omitempty"`
}

// Page holds everything extracted from a single PDF page.
// Immutable after loading.
type Page struct {
	Number int     `json:"number"` // 1-based
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Runs   []TextRun
	Annots []RawAnnotation
}

// Document is the loaded form of an input PDF
type Document struct {
	Path     string
	Pages    []Page
	Warnings []string // page-level parse problems, already logged
}

// Request and response types for the service operations

// ValidateFileRequest represents a request to validate a PDF file
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// ValidateFileResult represents the result of a PDF validation operation
type ValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Message string `json:"message,omitempty"`
}

// DocumentInfoRequest represents a request for document statistics
type DocumentInfoRequest struct {
	Path string `json:"path"`
}

// DocumentInfoResult summarizes a PDF's pages and annotation inventory
type DocumentInfoResult struct {
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	Pages       int    `json:"pages"`
	Highlights  int    `json:"highlights"` // includes underline and squiggly markup
	Strikeouts  int    `json:"strikeouts"`
	Comments    int    `json:"comments"`
	OtherAnnots int    `json:"other_annotations"`
}
