package report

import (
	"fmt"
	"log"

	"github.com/reviewtools/redline/internal/config"
	"github.com/reviewtools/redline/internal/lines"
	"github.com/reviewtools/redline/internal/pdf"
)

// Pipeline runs the page-by-page resolution flow: header split, printed
// line-number detection, fallback reconstruction, annotation extraction and
// resolution. Pages are processed strictly sequentially so the global entry
// order matches the report order without a merge step.
type Pipeline struct {
	header        lines.HeaderRegion
	detector      *lines.PrintedDetector
	reconstructor *lines.Reconstructor
	extractor     *Extractor
	resolver      *Resolver
}

// RunResult carries the resolved entries plus per-run statistics
type RunResult struct {
	Entries       []Entry
	Pages         int // pages successfully processed
	PrintedPages  int // pages resolved from printed margin numerals
	FallbackPages int // pages resolved by body-line reconstruction
	SkippedPages  int // pages that failed to parse
	Warnings      []string
}

// NewPipeline builds a pipeline from the configuration's tuning knobs
func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{
		header:        lines.NewHeaderRegion(cfg.HeaderMarginCM),
		detector:      lines.NewPrintedDetector(cfg.MarginFrac, cfg.NumeralStep, cfg.MinNumeralRun),
		reconstructor: lines.NewReconstructor(cfg.ClusterFactor),
		extractor:     NewExtractor(),
		resolver:      NewResolver(),
	}
}

// Run processes every page of the document in order. Page-level problems
// degrade (warning, fallback or skip); Run itself cannot fail.
func (p *Pipeline) Run(doc *pdf.Document) *RunResult {
	result := &RunResult{
		Warnings:     append([]string{}, doc.Warnings...),
		SkippedPages: len(doc.Warnings),
	}

	for _, page := range doc.Pages {
		entries := p.runPage(page, result)
		result.Entries = append(result.Entries, entries...)
		result.Pages++
	}

	return result
}

// runPage resolves a single page
func (p *Pipeline) runPage(page pdf.Page, result *RunResult) []Entry {
	if p.header.CoversPage(page.Height) {
		warning := fmt.Sprintf("page %d: header margin covers the whole page, no annotations reported", page.Number)
		log.Printf("%s", warning)
		result.Warnings = append(result.Warnings, warning)
		return nil
	}

	// Printed detection takes precedence; reconstruction is the fallback
	// and always yields a usable (possibly empty) mapping
	src, ok := p.detector.Detect(page, p.header)
	if ok {
		result.PrintedPages++
	} else {
		src = p.reconstructor.Reconstruct(page, p.header)
		result.FallbackPages++
	}

	annots := p.extractor.Extract(page, p.header)
	return p.resolver.ResolvePage(page.Number, annots, src)
}
