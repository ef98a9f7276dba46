package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test default values
	if cfg.Mode != "extract" {
		t.Errorf("Expected default mode to be 'extract', got '%s'", cfg.Mode)
	}

	if cfg.HeaderMarginCM != 1.5 {
		t.Errorf("Expected default header margin to be 1.5cm, got %g", cfg.HeaderMarginCM)
	}

	if cfg.MarginFrac != 0.15 {
		t.Errorf("Expected default margin fraction to be 0.15, got %g", cfg.MarginFrac)
	}

	if cfg.NumeralStep != 1 {
		t.Errorf("Expected default numeral step to be 1, got %d", cfg.NumeralStep)
	}

	if cfg.MinNumeralRun != 3 {
		t.Errorf("Expected default minimum numeral run to be 3, got %d", cfg.MinNumeralRun)
	}

	if cfg.ClusterFactor != 0.6 {
		t.Errorf("Expected default cluster factor to be 0.6, got %g", cfg.ClusterFactor)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.ServerName != "redline" {
		t.Errorf("Expected default server name to be 'redline', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func(mutate func(*Config)) *Config {
		cfg := DefaultConfig()
		cfg.InputPath = "/tmp/manuscript.pdf"
		if mutate != nil {
			mutate(cfg)
		}
		return cfg
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config - extract mode",
			config:  valid(nil),
			wantErr: false,
		},
		{
			name: "valid config - stdio mode without input",
			config: valid(func(c *Config) {
				c.Mode = ModeStdio
				c.InputPath = ""
			}),
			wantErr: false,
		},
		{
			name: "invalid mode",
			config: valid(func(c *Config) {
				c.Mode = "server"
			}),
			wantErr: true,
		},
		{
			name: "extract mode without input",
			config: valid(func(c *Config) {
				c.InputPath = ""
			}),
			wantErr: true,
		},
		{
			name: "negative header margin",
			config: valid(func(c *Config) {
				c.HeaderMarginCM = -0.5
			}),
			wantErr: true,
		},
		{
			name: "zero header margin is allowed",
			config: valid(func(c *Config) {
				c.HeaderMarginCM = 0
			}),
			wantErr: false,
		},
		{
			name: "margin fraction zero",
			config: valid(func(c *Config) {
				c.MarginFrac = 0
			}),
			wantErr: true,
		},
		{
			name: "margin fraction one",
			config: valid(func(c *Config) {
				c.MarginFrac = 1
			}),
			wantErr: true,
		},
		{
			name: "numeral step zero",
			config: valid(func(c *Config) {
				c.NumeralStep = 0
			}),
			wantErr: true,
		},
		{
			name: "minimum numeral run too small",
			config: valid(func(c *Config) {
				c.MinNumeralRun = 1
			}),
			wantErr: true,
		},
		{
			name: "cluster factor zero",
			config: valid(func(c *Config) {
				c.ClusterFactor = 0
			}),
			wantErr: true,
		},
		{
			name: "max file size zero",
			config: valid(func(c *Config) {
				c.MaxFileSize = 0
			}),
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: valid(func(c *Config) {
				c.LogLevel = "verbose"
			}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple pdf",
			input: "/papers/manuscript.pdf",
			want:  "/papers/manuscript_annotations.txt",
		},
		{
			name:  "uppercase extension",
			input: "/papers/Review Copy.PDF",
			want:  "/papers/Review Copy_annotations.txt",
		},
		{
			name:  "no extension",
			input: "/papers/manuscript",
			want:  "/papers/manuscript_annotations.txt",
		},
		{
			name:  "dotted base name",
			input: "draft.v2.pdf",
			want:  "draft.v2_annotations.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveOutputPath(tt.input); got != tt.want {
				t.Errorf("DeriveOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfigModeHelpers(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.IsStdioMode() {
		t.Error("Expected extract mode config not to report stdio mode")
	}
	if cfg.IsDebug() {
		t.Error("Expected info log level not to report debug")
	}

	cfg.Mode = ModeStdio
	cfg.LogLevel = "debug"

	if !cfg.IsStdioMode() {
		t.Error("Expected stdio mode config to report stdio mode")
	}
	if !cfg.IsDebug() {
		t.Error("Expected debug log level to report debug")
	}
}
