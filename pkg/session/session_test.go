package session

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/computerscienceiscool/linegrep/pkg/config"
)

func TestNewSession(t *testing.T) {
	sess := NewSession(&config.Config{}, zerolog.Nop())
	defer sess.Close()

	_, err := uuid.Parse(sess.ID)
	assert.NoError(t, err, "session ID should be a UUID")
	assert.False(t, sess.StartTime.IsZero())
	assert.Nil(t, sess.audit, "audit log should be disabled without a path")
}

func TestNewSession_UniqueIDs(t *testing.T) {
	a := NewSession(&config.Config{}, zerolog.Nop())
	b := NewSession(&config.Config{}, zerolog.Nop())

	assert.NotEqual(t, a.ID, b.ID)
}

func TestSession_LogAuditDisabled(t *testing.T) {
	sess := NewSession(&config.Config{}, zerolog.Nop())

	assert.NotPanics(t, func() {
		sess.LogAudit(AuditEntry{Query: "q", Success: true})
	})
	assert.NoError(t, sess.Close())
}

func TestSession_LogAuditToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.log")
	sess := NewSession(&config.Config{AuditLogPath: logPath}, zerolog.Nop())

	sess.LogAudit(AuditEntry{
		Query:   "safe",
		Source:  "poem.txt",
		Mode:    "exact",
		Matches: 1,
		Success: true,
	})
	sess.LogAudit(AuditEntry{
		Query:    "safe",
		Source:   "missing.txt",
		Mode:     "exact",
		Success:  false,
		ErrorMsg: "no such file",
	})
	require.NoError(t, sess.Close())

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]interface{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 2)

	assert.Equal(t, sess.ID, entries[0]["session"])
	assert.Equal(t, "safe", entries[0]["query"])
	assert.Equal(t, "success", entries[0]["status"])
	assert.EqualValues(t, 1, entries[0]["matches"])
	assert.NotContains(t, entries[0], "error")

	assert.Equal(t, "failed", entries[1]["status"])
	assert.Equal(t, "no such file", entries[1]["error"])
}

func TestAuditLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	audit := newAuditLogger(&buf, nil)

	audit.Log("abc", AuditEntry{Query: "x", Mode: "ignore-case", Duration: time.Millisecond, Success: true})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["session"])
	assert.Equal(t, "ignore-case", entry["mode"])
	assert.Equal(t, "search", entry["message"])
	assert.NoError(t, audit.Close())
}

func TestAuditLogger_NilSafe(t *testing.T) {
	var audit *AuditLogger
	assert.NotPanics(t, func() { audit.Log("id", AuditEntry{}) })
	assert.NoError(t, audit.Close())
}
