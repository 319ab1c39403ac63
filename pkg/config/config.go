package config

import (
	"strings"

	apperrors "github.com/computerscienceiscool/linegrep/internal/errors"
)

// Config holds runtime settings for one linegrep invocation. The search
// inputs themselves live in search.SearchConfig.
type Config struct {
	// Source
	Revision    string
	RepoPath    string
	MaxFileSize int64

	// Output
	JSONOutput  bool
	CountOnly   bool
	LineNumbers bool
	Color       string

	// Diagnostics
	Verbose      bool
	LogLevel     string
	LogFormat    string
	AuditLogPath string
}

// Validate reports the first invalid option as an OptionError
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &apperrors.OptionError{Option: "color", Value: c.Color, Reason: "want auto, always or never"}
	}

	switch strings.ToLower(c.LogFormat) {
	case LogFormatConsole, LogFormatJSON:
	default:
		return &apperrors.OptionError{Option: "log-format", Value: c.LogFormat, Reason: "want console or json"}
	}

	if c.MaxFileSize < 0 {
		return &apperrors.OptionError{Option: "max-size", Value: c.MaxFileSize, Reason: "must not be negative"}
	}

	if c.JSONOutput && c.CountOnly {
		return &apperrors.OptionError{Option: "count", Value: c.CountOnly, Reason: "cannot be combined with --json"}
	}

	return nil
}
