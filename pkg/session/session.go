package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/computerscienceiscool/linegrep/pkg/config"
)

// Session tracks a single linegrep invocation
type Session struct {
	ID        string
	Config    *config.Config
	StartTime time.Time
	Logger    zerolog.Logger
	audit     *AuditLogger
}

// NewSession creates a new session. The audit log is only opened when
// cfg.AuditLogPath is set.
func NewSession(cfg *config.Config, logger zerolog.Logger) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Config:    cfg,
		StartTime: time.Now(),
	}
	s.Logger = logger.With().Str("session", s.ID).Logger()

	if cfg.AuditLogPath != "" {
		s.audit = NewAuditLogger(cfg.AuditLogPath)
	}
	return s
}

// LogAudit records a finished search in the audit log, if enabled
func (s *Session) LogAudit(entry AuditEntry) {
	if entry.Duration == 0 {
		entry.Duration = time.Since(s.StartTime)
	}
	s.audit.Log(s.ID, entry)
}

// Close releases the audit log
func (s *Session) Close() error {
	return s.audit.Close()
}
