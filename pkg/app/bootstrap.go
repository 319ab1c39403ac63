package app

import (
	"fmt"
	"io"
	"os"

	"github.com/computerscienceiscool/linegrep/pkg/config"
	"github.com/computerscienceiscool/linegrep/pkg/logging"
	"github.com/computerscienceiscool/linegrep/pkg/output"
	"github.com/computerscienceiscool/linegrep/pkg/search"
	"github.com/computerscienceiscool/linegrep/pkg/session"
	"github.com/computerscienceiscool/linegrep/pkg/source"
)

// Streams are the standard streams an App reads from and writes to
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStreams returns the process standard streams
func DefaultStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Bootstrap initializes and returns a configured App
func Bootstrap(cfg *config.Config, searchCfg *search.SearchConfig, streams Streams) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(streams.Err, logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot configure logging: %w", err)
	}

	// Create session
	sess := session.NewSession(cfg, logger)

	reader := source.New(source.Options{
		Revision:    cfg.Revision,
		RepoPath:    cfg.RepoPath,
		MaxFileSize: cfg.MaxFileSize,
		Stdin:       streams.In,
	})

	printer := output.NewPrinter(streams.Out, output.Options{
		JSON:        cfg.JSONOutput,
		CountOnly:   cfg.CountOnly,
		LineNumbers: cfg.LineNumbers,
		Color:       cfg.Color,
	})

	return &App{
		config:    cfg,
		searchCfg: searchCfg,
		session:   sess,
		reader:    reader,
		printer:   printer,
	}, nil
}
