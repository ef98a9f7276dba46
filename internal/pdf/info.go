package pdf

import (
	"fmt"
	"os"
)

// Info reports document statistics used by the info tooling
type Info struct {
	loader *Loader
}

// NewInfo creates a new document info component
func NewInfo(maxFileSize int64) *Info {
	return &Info{
		loader: NewLoader(maxFileSize),
	}
}

// DocumentInfo returns page and annotation statistics for a PDF file
func (i *Info) DocumentInfo(req DocumentInfoRequest) (*DocumentInfoResult, error) {
	fileInfo, err := os.Stat(req.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	doc, err := i.loader.LoadDocument(req.Path)
	if err != nil {
		return nil, err
	}

	result := &DocumentInfoResult{
		Path:  req.Path,
		Size:  fileInfo.Size(),
		Pages: len(doc.Pages),
	}

	for _, page := range doc.Pages {
		for _, annot := range page.Annots {
			switch annot.Subtype {
			case "Highlight", "Underline", "Squiggly":
				result.Highlights++
			case "StrikeOut":
				result.Strikeouts++
			case "Text", "FreeText":
				result.Comments++
			default:
				result.OtherAnnots++
			}
		}
	}

	return result, nil
}
