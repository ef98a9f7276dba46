package mcp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/reviewtools/redline/internal/config"
	"github.com/reviewtools/redline/internal/descriptions"
	"github.com/reviewtools/redline/internal/pdf"
	"github.com/reviewtools/redline/internal/report"
)

// Server exposes the comment extraction service as MCP tools over stdio
type Server struct {
	config    *config.Config
	service   *report.Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, service *report.Service) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:    cfg,
		service:   service,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	extractCommentsTool := mcp.NewTool(
		"extract_comments",
		mcp.WithDescription(descriptions.ExtractCommentsDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the annotated PDF file"),
		),
	)
	s.mcpServer.AddTool(extractCommentsTool, s.handleExtractComments)

	pdfInfoTool := mcp.NewTool(
		"pdf_info",
		mcp.WithDescription(descriptions.PDFInfoDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(pdfInfoTool, s.handlePDFInfo)

	validatePDFTool := mcp.NewTool(
		"validate_pdf",
		mcp.WithDescription(descriptions.ValidatePDFDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validatePDFTool, s.handleValidatePDF)
}

// Handler functions

func (s *Server) handleExtractComments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := report.ExtractCommentsRequest{Path: path}
	result, err := s.service.ExtractComments(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatExtractCommentsResult(result)), nil
}

func (s *Server) handlePDFInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := pdf.DocumentInfoRequest{Path: path}
	result, err := s.service.DocumentInfo(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("PDF: %s\n", result.Path)
	responseText += fmt.Sprintf("Size: %d bytes\n", result.Size)
	responseText += fmt.Sprintf("Pages: %d\n", result.Pages)
	responseText += fmt.Sprintf("Highlight annotations: %d\n", result.Highlights)
	responseText += fmt.Sprintf("Strikeout annotations: %d\n", result.Strikeouts)
	responseText += fmt.Sprintf("Comment annotations: %d\n", result.Comments)
	if result.OtherAnnots > 0 {
		responseText += fmt.Sprintf("Other annotations (ignored): %d\n", result.OtherAnnots)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleValidatePDF(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := pdf.ValidateFileRequest{Path: path}
	result, err := s.service.ValidateFile(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", result.Path)
	} else {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

// formatExtractCommentsResult renders the extraction summary plus the report
func (s *Server) formatExtractCommentsResult(result *report.ExtractCommentsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extracted %d comments from %s\n", result.Entries, result.Path)
	fmt.Fprintf(&b, "Pages processed: %d (printed line numbers: %d, reconstructed: %d, skipped: %d)\n",
		result.Pages, result.PrintedPages, result.FallbackPages, result.SkippedPages)
	for _, warning := range result.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", warning)
	}
	b.WriteString("\n")
	b.WriteString(result.Report)
	return b.String()
}

// Run starts the MCP server over stdio. The parent process controls the
// lifecycle; we exit when stdin closes.
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting redline MCP server in stdio mode")
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
