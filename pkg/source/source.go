// Package source resolves a search source identifier to its text.
//
// Readers return their own errors unchanged; callers should not expect
// wrapping beyond what the underlying library does.
package source

import (
	"io"
	"os"
)

// StdinPath is the source identifier that selects standard input
const StdinPath = "-"

// Reader loads the full content identified by path
type Reader interface {
	Read(path string) (string, error)
}

// Options configures how source identifiers are resolved
type Options struct {
	Revision    string // when set, read from this git revision
	RepoPath    string
	MaxFileSize int64 // 0 means unlimited
	Stdin       io.Reader
}

// New returns the reader for opts: git when a revision is requested,
// otherwise the filesystem with "-" mapped to stdin
func New(opts Options) Reader {
	if opts.Revision != "" {
		return &GitReader{RepoPath: opts.RepoPath, Revision: opts.Revision, MaxFileSize: opts.MaxFileSize}
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	return &FileReader{MaxFileSize: opts.MaxFileSize, Stdin: stdin}
}
