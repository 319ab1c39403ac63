package search

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// MatchSpans returns the byte ranges of line covered by occurrences of
// query, in order and without overlap. With ignoreCase the ranges are
// widened to whole runes of the original line, so a query that matches
// part of a folded rune (ß folds to "ss") still highlights the rune.
func MatchSpans(query, line string, ignoreCase bool) [][2]int {
	if query == "" {
		return nil
	}
	if !ignoreCase {
		return exactSpans(query, line)
	}
	return foldedSpans(query, line)
}

func exactSpans(query, line string) [][2]int {
	var spans [][2]int
	off := 0
	for {
		i := strings.Index(line[off:], query)
		if i < 0 {
			return spans
		}
		start := off + i
		off = start + len(query)
		spans = append(spans, [2]int{start, off})
	}
}

func foldedSpans(query, line string) [][2]int {
	folder := cases.Fold()
	query = folder.String(query)
	if query == "" {
		return nil
	}

	// starts[i] and ends[i] are the bounds of the original rune that
	// produced byte i of the folded line.
	var folded strings.Builder
	starts := make([]int, 0, len(line))
	ends := make([]int, 0, len(line))
	for i := 0; i < len(line); {
		_, w := utf8.DecodeRuneInString(line[i:])
		f := folder.String(line[i : i+w])
		folded.WriteString(f)
		for j := 0; j < len(f); j++ {
			starts = append(starts, i)
			ends = append(ends, i+w)
		}
		i += w
	}

	var spans [][2]int
	haystack := folded.String()
	off := 0
	for {
		i := strings.Index(haystack[off:], query)
		if i < 0 {
			return spans
		}
		s := off + i
		e := s + len(query)
		off = e

		span := [2]int{starts[s], ends[e-1]}
		if n := len(spans); n > 0 && span[0] < spans[n-1][1] {
			if span[1] > spans[n-1][1] {
				spans[n-1][1] = span[1]
			}
			continue
		}
		spans = append(spans, span)
	}
}
