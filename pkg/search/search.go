package search

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	ModeExact      = "exact"
	ModeIgnoreCase = "ignore-case"
)

// Match is a matching line together with its 1-based position
type Match struct {
	LineNumber int    `json:"line"`
	Text       string `json:"text"`
}

// Search returns the lines of content that contain query, in order.
// The returned strings are slices of content, not copies.
func Search(query, content string) []string {
	return collect(content, matcher(query, false))
}

// SearchCaseInsensitive is Search with both the query and each line
// case folded before the containment test. Lines are returned as they
// appear in content.
func SearchCaseInsensitive(query, content string) []string {
	return collect(content, matcher(query, true))
}

// Run dispatches to Search or SearchCaseInsensitive according to cfg
func Run(cfg *SearchConfig, content string) []string {
	if cfg.IgnoreCase() {
		return SearchCaseInsensitive(cfg.Query(), content)
	}
	return Search(cfg.Query(), content)
}

// FindMatches is Run with line numbers attached
func FindMatches(cfg *SearchConfig, content string) []Match {
	matches := []Match{}
	contains := matcher(cfg.Query(), cfg.IgnoreCase())
	eachLine(content, func(n int, line string) {
		if contains(line) {
			matches = append(matches, Match{LineNumber: n, Text: line})
		}
	})
	return matches
}

func collect(content string, contains func(line string) bool) []string {
	results := []string{}
	eachLine(content, func(_ int, line string) {
		if contains(line) {
			results = append(results, line)
		}
	})
	return results
}

// matcher builds the containment test for one scan. The folder is
// stateful, so each scan gets its own.
func matcher(query string, ignoreCase bool) func(line string) bool {
	if !ignoreCase {
		return func(line string) bool {
			return strings.Contains(line, query)
		}
	}
	folder := cases.Fold()
	query = folder.String(query)
	return func(line string) bool {
		return strings.Contains(folder.String(line), query)
	}
}
