package search

// ConfigErrorKind identifies why a SearchConfig could not be built
type ConfigErrorKind int

const (
	MissingQuery ConfigErrorKind = iota + 1
	MissingSourcePath
)

func (k ConfigErrorKind) String() string {
	switch k {
	case MissingQuery:
		return "MISSING_QUERY"
	case MissingSourcePath:
		return "MISSING_SOURCE_PATH"
	default:
		return "UNKNOWN"
	}
}

// ConfigError is returned by Build when required arguments are absent
type ConfigError struct {
	Kind ConfigErrorKind
	msg  string
}

func (e *ConfigError) Error() string {
	return e.msg
}

// Is matches any ConfigError of the same kind
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Errors returned by Build
var (
	ErrMissingQuery      = &ConfigError{Kind: MissingQuery, msg: "did not get query string"}
	ErrMissingSourcePath = &ConfigError{Kind: MissingSourcePath, msg: "did not get file path string"}
)
