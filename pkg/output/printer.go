package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/computerscienceiscool/linegrep/pkg/config"
	"github.com/computerscienceiscool/linegrep/pkg/search"
)

// Result is everything the printer needs about one finished search
type Result struct {
	Query      string         `json:"query"`
	Source     string         `json:"source"`
	Revision   string         `json:"revision,omitempty"`
	IgnoreCase bool           `json:"ignoreCase"`
	Count      int            `json:"count"`
	Matches    []search.Match `json:"matches"`
}

// Options selects the output format
type Options struct {
	JSON        bool
	CountOnly   bool
	LineNumbers bool
	Color       string
}

// Printer writes search results to an output stream
type Printer struct {
	w         io.Writer
	opts      Options
	highlight *lipgloss.Style
}

// NewPrinter creates a printer for w. Color "auto" highlights only when
// w is a terminal.
func NewPrinter(w io.Writer, opts Options) *Printer {
	p := &Printer{w: w, opts: opts}
	if !opts.JSON && colorEnabled(w, opts.Color) {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI)
		style := r.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true).
			TabWidth(lipgloss.NoTabConversion)
		p.highlight = &style
	}
	return p
}

func colorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes res in the configured format
func (p *Printer) Print(res *Result) error {
	switch {
	case p.opts.JSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case p.opts.CountOnly:
		_, err := fmt.Fprintln(p.w, res.Count)
		return err
	}

	for _, m := range res.Matches {
		line := m.Text
		if p.highlight != nil {
			line = p.colorize(res.Query, line, res.IgnoreCase)
		}
		var err error
		if p.opts.LineNumbers {
			_, err = fmt.Fprintf(p.w, "%d:%s\n", m.LineNumber, line)
		} else {
			_, err = fmt.Fprintln(p.w, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) colorize(query, line string, ignoreCase bool) string {
	spans := search.MatchSpans(query, line, ignoreCase)
	if len(spans) == 0 {
		return line
	}

	var sb strings.Builder
	last := 0
	for _, span := range spans {
		sb.WriteString(line[last:span[0]])
		sb.WriteString(p.highlight.Render(line[span[0]:span[1]]))
		last = span[1]
	}
	sb.WriteString(line[last:])
	return sb.String()
}
