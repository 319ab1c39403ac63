package source

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	apperrors "github.com/computerscienceiscool/linegrep/internal/errors"
)

// GitReader reads a file as it exists at a git revision. Relative paths
// follow the working directory while it is inside the worktree, and are
// taken from the repository root otherwise.
type GitReader struct {
	RepoPath    string
	Revision    string
	MaxFileSize int64
}

// Read returns the blob for filePath in the tree of r.Revision
func (r *GitReader) Read(filePath string) (string, error) {
	repoPath := r.RepoPath
	if repoPath == "" {
		repoPath = "."
	}

	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(r.Revision))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", apperrors.ErrRevisionNotFound, r.Revision, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", err
	}

	name := treePath(repo, filePath)
	file, err := commit.File(name)
	if err != nil {
		return "", err
	}

	if err := checkSize(r.Revision+":"+name, file.Size, r.MaxFileSize); err != nil {
		return "", err
	}

	return file.Contents()
}

func treePath(repo *git.Repository, filePath string) string {
	var root string
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}
	cwd, _ := os.Getwd()
	return resolveTreePath(root, cwd, filePath)
}

// resolveTreePath returns filePath as a slash separated path from the
// worktree root. root and cwd may be empty when unknown.
func resolveTreePath(root, cwd, filePath string) string {
	name := filePath
	if root != "" && (cwd != "" || filepath.IsAbs(filePath)) {
		abs := filePath
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(realPath(cwd), filePath)
		}
		if rel, ok := within(realPath(root), abs); ok {
			name = rel
		}
	}
	return path.Clean(filepath.ToSlash(name))
}

func within(root, p string) (string, bool) {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

func realPath(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return p
}
