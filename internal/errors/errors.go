package errors

import "fmt"

// Error types for the application
var (
	ErrResourceLimit    = fmt.Errorf("RESOURCE_LIMIT")
	ErrInvalidOption    = fmt.Errorf("INVALID_OPTION")
	ErrRevisionNotFound = fmt.Errorf("REVISION_NOT_FOUND")
)

// OptionError reports a command line or config option with an unusable
// value. It always matches ErrInvalidOption.
type OptionError struct {
	Option string // flag name without dashes
	Value  interface{}
	Reason string
}

func (e *OptionError) Error() string {
	msg := fmt.Sprintf("invalid --%s %v", e.Option, e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *OptionError) Unwrap() error {
	return ErrInvalidOption
}

// SizeLimitError is returned when a source holds more bytes than
// --max-size allows. Size is a lower bound for streams, which stop
// being read one byte past the limit. It always matches ErrResourceLimit.
type SizeLimitError struct {
	Source string
	Size   int64
	Limit  int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("%s: %d bytes exceeds the %d byte limit", e.Source, e.Size, e.Limit)
}

func (e *SizeLimitError) Unwrap() error {
	return ErrResourceLimit
}
