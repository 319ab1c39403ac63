package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSpans(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		line       string
		ignoreCase bool
		want       [][2]int
	}{
		{"empty query", "", "anything", false, nil},
		{"no match", "x", "abc", false, nil},
		{"single exact", "fast", "safe, fast", false, [][2]int{{6, 10}}},
		{"repeated exact", "ab", "abxab", false, [][2]int{{0, 2}, {3, 5}}},
		{"non overlapping", "aa", "aaa", false, [][2]int{{0, 2}}},
		{"exact ignores other case", "rust", "Rust", false, nil},
		{"folded ascii", "rust", "Trust me. Rust!", true, [][2]int{{1, 5}, {10, 14}}},
		{"folded keeps original bytes", "STRASSE", "Straße", true, [][2]int{{0, 7}}},
		{"partial fold widens to rune", "s", "ß", true, [][2]int{{0, 2}}},
		{"multibyte", "本", "日本語", true, [][2]int{{3, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchSpans(tt.query, tt.line, tt.ignoreCase))
		})
	}
}
