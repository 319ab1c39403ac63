package source

import (
	"io"
	"os"

	apperrors "github.com/computerscienceiscool/linegrep/internal/errors"
)

// FileReader reads content from the local filesystem
type FileReader struct {
	MaxFileSize int64
	Stdin       io.Reader
}

// Read returns the contents of path, or of Stdin when path is "-"
func (r *FileReader) Read(path string) (string, error) {
	if path == StdinPath && r.Stdin != nil {
		return r.readStream(r.Stdin)
	}

	if r.MaxFileSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		if err := checkSize(path, info.Size(), r.MaxFileSize); err != nil {
			return "", err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *FileReader) readStream(in io.Reader) (string, error) {
	if r.MaxFileSize > 0 {
		in = io.LimitReader(in, r.MaxFileSize+1)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	if err := checkSize("standard input", int64(len(data)), r.MaxFileSize); err != nil {
		return "", err
	}
	return string(data), nil
}

func checkSize(source string, size, limit int64) error {
	if limit > 0 && size > limit {
		return &apperrors.SizeLimitError{Source: source, Size: size, Limit: limit}
	}
	return nil
}
