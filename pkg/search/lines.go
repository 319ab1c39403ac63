package search

import "strings"

// eachLine calls fn for every line of content with its 1-based number.
// Lines end at '\n'; a '\r' directly before the terminator is dropped.
// A lone '\r' anywhere else, including at the end of content, is kept.
// A trailing terminator does not start another line.
func eachLine(content string, fn func(n int, line string)) {
	n := 0
	for len(content) > 0 {
		n++
		var line string
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			line, content = strings.TrimSuffix(content[:i], "\r"), content[i+1:]
		} else {
			line, content = content, ""
		}
		fn(n, line)
	}
}

// Lines splits content into lines using the same rules as the searches
func Lines(content string) []string {
	lines := make([]string, 0, strings.Count(content, "\n")+1)
	eachLine(content, func(_ int, line string) {
		lines = append(lines, line)
	})
	return lines
}
