package session

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/computerscienceiscool/linegrep/pkg/config"
)

// AuditEntry describes one completed search
type AuditEntry struct {
	Query    string
	Source   string
	Mode     string
	Matches  int
	Success  bool
	ErrorMsg string
	Duration time.Duration
}

// AuditLogger handles audit logging operations
type AuditLogger struct {
	logger zerolog.Logger
	closer io.Closer
}

// NewAuditLogger creates an audit logger appending JSON lines to a
// size-rotated file at logPath
func NewAuditLogger(logPath string) *AuditLogger {
	rotator := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    config.AuditLogMaxSize,
		MaxBackups: config.AuditLogMaxBackups,
		MaxAge:     config.AuditLogMaxAge,
	}
	return newAuditLogger(rotator, rotator)
}

func newAuditLogger(w io.Writer, closer io.Closer) *AuditLogger {
	return &AuditLogger{
		logger: zerolog.New(w).With().Timestamp().Logger(),
		closer: closer,
	}
}

// Log writes an audit log entry
func (a *AuditLogger) Log(sessionID string, entry AuditEntry) {
	if a == nil {
		return
	}

	status := "success"
	if !entry.Success {
		status = "failed"
	}

	ev := a.logger.Log().
		Str("session", sessionID).
		Str("query", entry.Query).
		Str("source", entry.Source).
		Str("mode", entry.Mode).
		Int("matches", entry.Matches).
		Dur("duration", entry.Duration).
		Str("status", status)
	if entry.ErrorMsg != "" {
		ev = ev.Str("error", entry.ErrorMsg)
	}
	ev.Msg("search")
}

// Close closes the audit log file
func (a *AuditLogger) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
