package report

import (
	"fmt"

	"github.com/reviewtools/redline/internal/config"
	"github.com/reviewtools/redline/internal/pdf"
)

// ExtractCommentsRequest represents a request to extract a comment report
type ExtractCommentsRequest struct {
	Path string `json:"path"`
}

// ExtractCommentsResult represents the result of a comment extraction run
type ExtractCommentsResult struct {
	Path          string   `json:"path"`
	Report        string   `json:"report"`
	Entries       int      `json:"entries"`
	Pages         int      `json:"pages"`
	PrintedPages  int      `json:"printed_pages"`
	FallbackPages int      `json:"fallback_pages"`
	SkippedPages  int      `json:"skipped_pages"`
	Warnings      []string `json:"warnings,omitempty"`
}

// Service is the document-level facade orchestrating loading, validation and
// the resolution pipeline. Both the CLI and the MCP server drive it.
type Service struct {
	cfg       *config.Config
	loader    *pdf.Loader
	validator *pdf.Validator
	info      *pdf.Info
	pipeline  *Pipeline
}

// NewService creates a service wired from the configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg:       cfg,
		loader:    pdf.NewLoader(cfg.MaxFileSize),
		validator: pdf.NewValidator(cfg.MaxFileSize),
		info:      pdf.NewInfo(cfg.MaxFileSize),
		pipeline:  NewPipeline(cfg),
	}
}

// ExtractComments loads the PDF and produces the full comment report.
// Only input-level failures (missing or unparseable file) return an error;
// page-level problems degrade into warnings on the result.
func (s *Service) ExtractComments(req ExtractCommentsRequest) (*ExtractCommentsResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	doc, err := s.loader.LoadDocument(req.Path)
	if err != nil {
		return nil, err
	}

	run := s.pipeline.Run(doc)

	return &ExtractCommentsResult{
		Path:          req.Path,
		Report:        FormatReport(run.Entries),
		Entries:       len(run.Entries),
		Pages:         run.Pages,
		PrintedPages:  run.PrintedPages,
		FallbackPages: run.FallbackPages,
		SkippedPages:  run.SkippedPages,
		Warnings:      run.Warnings,
	}, nil
}

// DocumentInfo returns page and annotation statistics for a PDF file
func (s *Service) DocumentInfo(req pdf.DocumentInfoRequest) (*pdf.DocumentInfoResult, error) {
	return s.info.DocumentInfo(req)
}

// ValidateFile performs validation on a PDF file
func (s *Service) ValidateFile(req pdf.ValidateFileRequest) (*pdf.ValidateFileResult, error) {
	return s.validator.ValidateFile(req)
}
