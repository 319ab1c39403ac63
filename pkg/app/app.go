package app

import (
	"time"

	"github.com/computerscienceiscool/linegrep/pkg/config"
	"github.com/computerscienceiscool/linegrep/pkg/output"
	"github.com/computerscienceiscool/linegrep/pkg/search"
	"github.com/computerscienceiscool/linegrep/pkg/session"
	"github.com/computerscienceiscool/linegrep/pkg/source"
)

// App represents the main application
type App struct {
	config    *config.Config
	searchCfg *search.SearchConfig
	session   *session.Session
	reader    source.Reader
	printer   *output.Printer
}

// Run reads the configured source, searches it and prints the matches.
// Errors from the content source are returned as the reader produced them.
func (a *App) Run() error {
	if a.config.Verbose {
		a.logVerboseInfo()
	}

	entry := session.AuditEntry{
		Query:  a.searchCfg.Query(),
		Source: a.searchCfg.SourcePath(),
		Mode:   a.searchCfg.Mode(),
	}

	start := time.Now()
	content, err := a.reader.Read(a.searchCfg.SourcePath())
	if err != nil {
		entry.ErrorMsg = err.Error()
		entry.Duration = time.Since(start)
		a.session.LogAudit(entry)
		a.session.Logger.Debug().Err(err).Str("source", entry.Source).Msg("reading source failed")
		return err
	}

	matches := search.FindMatches(a.searchCfg, content)

	entry.Success = true
	entry.Matches = len(matches)
	entry.Duration = time.Since(start)
	a.session.LogAudit(entry)
	a.session.Logger.Debug().
		Int("bytes", len(content)).
		Int("matches", len(matches)).
		Dur("elapsed", entry.Duration).
		Msg("search finished")

	return a.printer.Print(&output.Result{
		Query:      a.searchCfg.Query(),
		Source:     a.searchCfg.SourcePath(),
		Revision:   a.config.Revision,
		IgnoreCase: a.searchCfg.IgnoreCase(),
		Count:      len(matches),
		Matches:    matches,
	})
}

// Close releases resources held by the session
func (a *App) Close() error {
	return a.session.Close()
}

// logVerboseInfo logs the effective configuration
func (a *App) logVerboseInfo() {
	ev := a.session.Logger.Debug().
		Str("query", a.searchCfg.Query()).
		Str("source", a.searchCfg.SourcePath()).
		Str("mode", a.searchCfg.Mode()).
		Int64("max_file_size", a.config.MaxFileSize).
		Str("color", a.config.Color)
	if a.config.Revision != "" {
		ev = ev.Str("revision", a.config.Revision).Str("repo", a.config.RepoPath)
	}
	if a.config.AuditLogPath != "" {
		ev = ev.Str("audit_log", a.config.AuditLogPath)
	}
	ev.Msg("configuration")
}

// GetSession returns the app's session
func (a *App) GetSession() *session.Session {
	return a.session
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetSearchConfig returns the app's search configuration
func (a *App) GetSearchConfig() *search.SearchConfig {
	return a.searchCfg
}
