package search

// SearchConfig holds the inputs governing a single search. It is
// immutable once built; use Build to construct one.
type SearchConfig struct {
	query      string
	sourcePath string
	ignoreCase bool
}

// Build assembles a SearchConfig from positional arguments. The first
// element is the program name and is discarded, the next is the query
// and the one after that identifies the content source. Trailing
// arguments are ignored.
//
// ignoreCase is the case toggle as already sampled by the caller; Build
// never reads the process environment.
func Build(args []string, ignoreCase bool) (*SearchConfig, error) {
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) < 1 {
		return nil, ErrMissingQuery
	}
	query := args[0]

	if len(args) < 2 {
		return nil, ErrMissingSourcePath
	}
	sourcePath := args[1]

	return &SearchConfig{
		query:      query,
		sourcePath: sourcePath,
		ignoreCase: ignoreCase,
	}, nil
}

// Query returns the substring searched for
func (c *SearchConfig) Query() string {
	return c.query
}

// SourcePath returns the opaque content source identifier
func (c *SearchConfig) SourcePath() string {
	return c.sourcePath
}

// IgnoreCase reports whether the case-insensitive scan is selected
func (c *SearchConfig) IgnoreCase() bool {
	return c.ignoreCase
}

// Mode returns the name of the selected scan, for logs and output
func (c *SearchConfig) Mode() string {
	if c.ignoreCase {
		return ModeIgnoreCase
	}
	return ModeExact
}
