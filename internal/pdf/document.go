package pdf

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const (
	// Default US Letter dimensions, used when a page carries no MediaBox
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0

	// Fallback when a text run reports no font size
	defaultFontSize = 12.0
)

// Loader reads a PDF into the Document model. Positioned text runs come from
// ledongthuc/pdf; page geometry and annotation dictionaries come from pdfcpu,
// which resolves indirect references and inherited page attributes.
type Loader struct {
	maxFileSize int64
}

// NewLoader creates a new document loader with the specified constraints
func NewLoader(maxFileSize int64) *Loader {
	return &Loader{
		maxFileSize: maxFileSize,
	}
}

// LoadDocument reads all pages of the PDF at path. A failure to open or parse
// the document at all is returned as an error; individual pages that fail to
// decode are skipped with a warning recorded on the Document.
func (l *Loader) LoadDocument(path string) (*Document, error) {
	if path == "" {
		return nil, inputError(path, "path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, inputError(path, "file does not exist")
	}
	if err != nil {
		return nil, inputError(path, "cannot access file: %w", err)
	}
	if fileInfo.Size() == 0 {
		return nil, inputError(path, "file is empty")
	}
	if fileInfo.Size() > l.maxFileSize {
		return nil, inputError(path, "file too large: %d bytes (max: %d bytes)", fileInfo.Size(), l.maxFileSize)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, parseError(path, "failed to open PDF: %w", err)
	}
	defer f.Close()

	cf, err := os.Open(path)
	if err != nil {
		return nil, inputError(path, "failed to open PDF: %w", err)
	}
	defer cf.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(cf, conf)
	if err != nil {
		return nil, parseError(path, "failed to read PDF context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, parseError(path, "failed to ensure page count: %w", err)
	}

	pageCount := ctx.PageCount
	if reader.NumPage() < pageCount {
		pageCount = reader.NumPage()
	}

	doc := &Document{Path: path}
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		page, err := l.loadPage(ctx, reader, pageNum)
		if err != nil {
			warning := fmt.Sprintf("page %d: %v", pageNum, err)
			log.Printf("skipping %s", warning)
			doc.Warnings = append(doc.Warnings, warning)
			continue
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

// loadPage extracts one page. Malformed content streams can panic inside the
// parser, so the whole page load is wrapped in a recover.
func (l *Loader) loadPage(ctx *model.Context, reader *pdf.Reader, pageNum int) (page Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during page load: %v", r)
		}
	}()

	pageDict, _, inhPAttrs, err := ctx.PageDict(pageNum, false)
	if err != nil {
		return Page{}, fmt.Errorf("failed to get page dictionary: %w", err)
	}

	width, height := defaultPageWidth, defaultPageHeight
	if inhPAttrs != nil && inhPAttrs.MediaBox != nil {
		width = inhPAttrs.MediaBox.Width()
		height = inhPAttrs.MediaBox.Height()
	}

	p := reader.Page(pageNum)
	if p.V.IsNull() {
		return Page{}, fmt.Errorf("invalid page object")
	}

	content := p.Content()
	runs := make([]TextRun, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		h := t.FontSize
		if h == 0 {
			h = defaultFontSize
		}
		// ledongthuc reports the baseline origin in bottom-up coordinates;
		// the run box spans one font height above it
		runs = append(runs, TextRun{
			BBox: Rect{
				X0: t.X,
				Y0: height - (t.Y + h),
				X1: t.X + t.W,
				Y1: height - t.Y,
			},
			Baseline: height - t.Y,
			FontSize: h,
			Text:     t.S,
		})
	}

	// Reading order: top to bottom, then left to right
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].BBox.Y0 != runs[j].BBox.Y0 {
			return runs[i].BBox.Y0 < runs[j].BBox.Y0
		}
		return runs[i].BBox.X0 < runs[j].BBox.X0
	})

	return Page{
		Number: pageNum,
		Width:  width,
		Height: height,
		Runs:   runs,
		Annots: pageAnnotations(ctx, pageDict, height),
	}, nil
}
