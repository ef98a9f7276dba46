package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeExtract = "extract"
	ModeStdio   = "stdio"

	// Default values
	DefaultHeaderMarginCM = 1.5
	DefaultMarginFrac     = 0.15
	DefaultNumeralStep    = 1
	DefaultMinNumeralRun  = 3
	DefaultClusterFactor  = 0.6
	DefaultLogLevel       = "info"
	DefaultMaxFileSize    = 100 * 1024 * 1024 // 100MB

	// Suffix appended to the input base name when no output path is given
	outputSuffix = "_annotations.txt"
)

// Config holds all configuration for the comment extractor
type Config struct {
	// Run mode: "extract" for one-shot CLI extraction, "stdio" for the MCP server
	Mode string

	// Extraction input/output
	InputPath  string
	OutputPath string

	// Line resolution tuning
	HeaderMarginCM float64 // header band height in centimeters
	MarginFrac     float64 // fraction of page width scanned for printed line numbers
	NumeralStep    int     // expected increment between consecutive printed numerals
	MinNumeralRun  int     // minimum consecutive step matches for printed detection
	ClusterFactor  float64 // baseline-gap clustering threshold as a fraction of line height

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode:           ModeExtract,
		HeaderMarginCM: DefaultHeaderMarginCM,
		MarginFrac:     DefaultMarginFrac,
		NumeralStep:    DefaultNumeralStep,
		MinNumeralRun:  DefaultMinNumeralRun,
		ClusterFactor:  DefaultClusterFactor,
		Version:        "1.0.0",
		ServerName:     "redline",
		LogLevel:       DefaultLogLevel,
		MaxFileSize:    DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// The input PDF is the first positional argument
	if pflag.NArg() > 0 {
		cfg.InputPath = pflag.Arg(0)
	}

	if cfg.InputPath != "" {
		if expandedPath, err := filepath.Abs(cfg.InputPath); err == nil {
			cfg.InputPath = expandedPath
		}
	}

	if cfg.OutputPath == "" && cfg.InputPath != "" {
		cfg.OutputPath = DeriveOutputPath(cfg.InputPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DeriveOutputPath returns the default report path for an input PDF
func DeriveOutputPath(inputPath string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + outputSuffix
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("REDLINE")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("header-margin-cm", cfg.HeaderMarginCM)
	viper.SetDefault("margin-frac", cfg.MarginFrac)
	viper.SetDefault("numeral-step", cfg.NumeralStep)
	viper.SetDefault("min-numeral-run", cfg.MinNumeralRun)
	viper.SetDefault("cluster-factor", cfg.ClusterFactor)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'extract' for one-shot extraction, 'stdio' for the MCP server")
	pflag.StringP("output", "o", cfg.OutputPath, "Output TXT file (default: <pdf_basename>_annotations.txt)")
	pflag.Float64("header-margin-cm", cfg.HeaderMarginCM,
		"Ignore line numbers and body text above this distance from the top, in centimeters")
	pflag.Float64("margin-frac", cfg.MarginFrac,
		"Fraction of page width treated as left margin for printed line numbers")
	pflag.Int("numeral-step", cfg.NumeralStep, "Expected increment between consecutive printed line numbers")
	pflag.Int("min-numeral-run", cfg.MinNumeralRun,
		"Minimum run of consecutive printed numerals required to trust margin detection")
	pflag.Float64("cluster-factor", cfg.ClusterFactor,
		"Line clustering threshold as a fraction of the estimated line height")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("header-margin-cm", pflag.Lookup("header-margin-cm"))
	_ = viper.BindPFlag("margin-frac", pflag.Lookup("margin-frac"))
	_ = viper.BindPFlag("numeral-step", pflag.Lookup("numeral-step"))
	_ = viper.BindPFlag("min-numeral-run", pflag.Lookup("min-numeral-run"))
	_ = viper.BindPFlag("cluster-factor", pflag.Lookup("cluster-factor"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <input.pdf> [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nRedline - extract PDF review annotations into a line-referenced comment report\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s manuscript.pdf                      # report to manuscript_annotations.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s manuscript.pdf -o review.txt        # explicit output path\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s manuscript.pdf --header-margin-cm 2 # wider running-header band\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=stdio                        # run as MCP server\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  REDLINE_MODE         Run mode\n")
		fmt.Fprintf(os.Stderr, "  REDLINE_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  REDLINE_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.OutputPath = viper.GetString("output")
	cfg.HeaderMarginCM = viper.GetFloat64("header-margin-cm")
	cfg.MarginFrac = viper.GetFloat64("margin-frac")
	cfg.NumeralStep = viper.GetInt("numeral-step")
	cfg.MinNumeralRun = viper.GetInt("min-numeral-run")
	cfg.ClusterFactor = viper.GetFloat64("cluster-factor")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Mode != ModeExtract && c.Mode != ModeStdio {
		return errors.New("mode must be either 'extract' or 'stdio'")
	}

	// Extract mode needs an input file; stdio mode receives paths per tool call
	if c.Mode == ModeExtract && c.InputPath == "" {
		return errors.New("input PDF path is required in extract mode")
	}

	if c.HeaderMarginCM < 0 {
		return errors.New("header margin must not be negative")
	}

	if c.MarginFrac <= 0 || c.MarginFrac >= 1 {
		return errors.New("margin fraction must be between 0 and 1 exclusive")
	}

	if c.NumeralStep < 1 {
		return errors.New("numeral step must be at least 1")
	}

	if c.MinNumeralRun < 2 {
		return errors.New("minimum numeral run must be at least 2")
	}

	if c.ClusterFactor <= 0 {
		return errors.New("cluster factor must be positive")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsStdioMode returns true when running as an MCP server over stdio
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Input: %s, Output: %s, HeaderMarginCM: %.2f, MarginFrac: %.2f, LogLevel: %s}",
		c.Mode, c.InputPath, c.OutputPath, c.HeaderMarginCM, c.MarginFrac, c.LogLevel)
}
