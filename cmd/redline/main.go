package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/reviewtools/redline/internal/config"
	"github.com/reviewtools/redline/internal/mcp"
	"github.com/reviewtools/redline/internal/pdf"
	"github.com/reviewtools/redline/internal/report"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the run mode
func setupLogging(cfg *config.Config) {
	if cfg.IsStdioMode() {
		// In stdio mode, redirect log output to stderr to avoid interfering with MCP protocol
		log.SetOutput(os.Stderr)
		// Reduce log verbosity in stdio mode unless debug is enabled
		if !cfg.IsDebug() {
			log.SetOutput(os.NewFile(0, os.DevNull))
		}
	} else {
		// In extract mode all diagnostics go to stderr; stdout is for results only
		log.SetOutput(os.Stderr)
		if cfg.IsDebug() {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		}
	}
}

// runStdioMode handles MCP stdio mode execution
func runStdioMode(ctx context.Context, server *mcp.Server) {
	// In stdio mode, the parent process controls our lifecycle
	// We should exit cleanly when stdin is closed or we get an error
	if err := server.Run(ctx); err != nil {
		// Only log to stderr in debug mode to avoid protocol interference
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

// runExtractMode converts the input PDF into a comment report file
func runExtractMode(cfg *config.Config, svc *report.Service) {
	result, err := svc.ExtractComments(report.ExtractCommentsRequest{Path: cfg.InputPath})
	if err != nil {
		if pdf.IsInputError(err) {
			log.Fatalf("Cannot read input: %v", err)
		}
		log.Fatalf("Extraction failed: %v", err)
	}

	for _, warning := range result.Warnings {
		log.Printf("Warning: %s", warning)
	}

	if err := os.WriteFile(cfg.OutputPath, []byte(result.Report), 0o644); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	fmt.Printf("Annotations extracted to: %s\n", cfg.OutputPath)
	fmt.Printf("Comments: %d across %d pages (printed line numbers: %d, reconstructed: %d, skipped: %d)\n",
		result.Entries, result.Pages, result.PrintedPages, result.FallbackPages, result.SkippedPages)
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" {
			printVersion()
			return
		}
	}

	// Load configuration from flags first
	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging based on mode
	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	svc := report.NewService(cfg)

	if cfg.IsStdioMode() {
		server, err := mcp.NewServer(cfg, svc)
		if err != nil {
			log.Fatalf("Failed to create MCP server: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		runStdioMode(ctx, server)
		return
	}

	runExtractMode(cfg, svc)
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("redline\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
