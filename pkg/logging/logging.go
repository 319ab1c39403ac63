// Package logging configures the diagnostic logger written to stderr.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects level and encoding of diagnostic output
type Options struct {
	Level   string
	Format  string
	Verbose bool
}

// New returns a logger writing to w. Verbose forces debug level.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level := zerolog.DebugLevel
	if !opts.Verbose {
		var err error
		level, err = zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		if level == zerolog.NoLevel {
			level = zerolog.WarnLevel
		}
	}

	out := w
	if !strings.EqualFold(opts.Format, "json") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("component", "linegrep").Logger(), nil
}
