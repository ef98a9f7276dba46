package pdf

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// pageAnnotations walks the Annots array of a page dictionary and returns the
// raw annotation objects with their geometry flipped into top-down
// coordinates. Popups, links and reply-chain annotations are skipped; replies
// duplicate the content of their parent markup.
func pageAnnotations(ctx *model.Context, pageDict types.Dict, pageHeight float64) []RawAnnotation {
	annotsObj, found := pageDict.Find("Annots")
	if !found {
		return nil
	}

	annotsArray, err := ctx.DereferenceArray(annotsObj)
	if err != nil {
		return nil
	}

	var annots []RawAnnotation
	for _, obj := range annotsArray {
		annotDict, err := ctx.DereferenceDict(obj)
		if err != nil || annotDict == nil {
			continue
		}

		subtype := dictName(ctx, annotDict, "Subtype")
		if subtype == "" || subtype == "Popup" || subtype == "Link" {
			continue
		}
		if _, found := annotDict.Find("IRT"); found {
			continue
		}

		rect, ok := dictRect(ctx, annotDict, pageHeight)
		if !ok {
			continue
		}

		annot := RawAnnotation{
			Subtype: subtype,
			Rect:    rect,
			Quads:   quadRects(ctx, annotDict, pageHeight),
		}

		if contentsObj, found := annotDict.Find("Contents"); found {
			if contents, err := ctx.DereferenceStringOrHexLiteral(contentsObj, model.V10, nil); err == nil {
				annot.Contents = contents
			}
		}

		annots = append(annots, annot)
	}

	return annots
}

// dictName resolves a name entry to its string value, or "" when absent
func dictName(ctx *model.Context, dict types.Dict, key string) string {
	obj, found := dict.Find(key)
	if !found {
		return ""
	}
	name, err := ctx.DereferenceName(obj, model.V10, nil)
	if err != nil {
		return ""
	}
	return string(name)
}

// dictRect parses the annotation's Rect entry into top-down coordinates
func dictRect(ctx *model.Context, dict types.Dict, pageHeight float64) (Rect, bool) {
	rectObj, found := dict.Find("Rect")
	if !found {
		return Rect{}, false
	}

	rectArray, err := ctx.DereferenceArray(rectObj)
	if err != nil || len(rectArray) != 4 {
		return Rect{}, false
	}

	coords := make([]float64, 4)
	for i, coord := range rectArray {
		if f, err := ctx.DereferenceNumber(coord); err == nil {
			coords[i] = f
		}
	}

	llx, lly, urx, ury := coords[0], coords[1], coords[2], coords[3]
	// Some producers write inverted rectangles
	if llx > urx {
		llx, urx = urx, llx
	}
	if lly > ury {
		lly, ury = ury, lly
	}

	return flipRect(llx, lly, urx, ury, pageHeight), true
}

// quadRects parses QuadPoints (groups of four corner points, bottom-up) into
// one top-down rectangle per quadrilateral. Returns nil when absent.
func quadRects(ctx *model.Context, dict types.Dict, pageHeight float64) []Rect {
	quadObj, found := dict.Find("QuadPoints")
	if !found {
		return nil
	}

	quadArray, err := ctx.DereferenceArray(quadObj)
	if err != nil || len(quadArray) < 8 || len(quadArray)%8 != 0 {
		return nil
	}

	nums := make([]float64, len(quadArray))
	for i, obj := range quadArray {
		if f, err := ctx.DereferenceNumber(obj); err == nil {
			nums[i] = f
		}
	}

	var rects []Rect
	for i := 0; i+8 <= len(nums); i += 8 {
		minX, maxX := nums[i], nums[i]
		minY, maxY := nums[i+1], nums[i+1]
		for j := 2; j < 8; j += 2 {
			x, y := nums[i+j], nums[i+j+1]
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
		rects = append(rects, flipRect(minX, minY, maxX, maxY, pageHeight))
	}

	return rects
}

// flipRect converts a bottom-up PDF rectangle into the top-down coordinate
// space used throughout the loader
func flipRect(llx, lly, urx, ury, pageHeight float64) Rect {
	return Rect{
		X0: llx,
		Y0: pageHeight - ury,
		X1: urx,
		Y1: pageHeight - lly,
	}
}
