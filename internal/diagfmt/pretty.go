package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sift/internal/diag"
	"sift/internal/source"
)

// Pretty renders diagnostics in a human-readable form, one block per
// diagnostic:
//
//	<path>:<line>:<col>: <severity>[<code>]: <message>
//	    <source line>
//	    <caret underline>
//
// It iterates bag.Items() as-is; callers sort the bag first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	for i := 0; i < maxItems; i++ {
		writePretty(w, items[i], fs, opts)
	}

	if truncated := len(items) - maxItems; truncated > 0 {
		fmt.Fprintf(w, "... and %d more diagnostics\n", truncated)
	}
}

func writePretty(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	path := formatPath(file, fs, opts.PathMode)
	sev := severityLabel(d.Severity, opts.Color)
	code := d.Code
	if opts.Color {
		code = color.New(color.Faint).Sprint(code)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s[%s]: %s\n", path, start.Line, start.Col, sev, code, d.Message)

	if opts.ShowSource {
		writeSourceContext(w, file, start, end, opts.Color)
	}
}

func severityLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(sev.String())
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(sev.String())
	default:
		return color.New(color.FgCyan).Sprint(sev.String())
	}
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// writeSourceContext prints the first line of the span with a caret
// underline. Multi-line spans underline to the end of the first line.
func writeSourceContext(w io.Writer, f *source.File, start, end source.LineCol, colored bool) {
	line := f.GetLine(start.Line)
	if line == "" && start.Col <= 1 {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	startCol := int(start.Col) - 1
	if startCol > len(line) {
		startCol = len(line)
	}

	endCol := len(line)
	if end.Line == start.Line && int(end.Col)-1 < endCol {
		endCol = int(end.Col) - 1
	}
	if endCol <= startCol {
		endCol = startCol + 1
	}

	// Display widths, not byte counts: tabs and wide runes shift the
	// caret otherwise.
	pad := runewidth.StringWidth(strings.ReplaceAll(line[:startCol], "\t", "    "))
	width := runewidth.StringWidth(line[startCol:min(endCol, len(line))])
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if colored {
		underline = color.New(color.FgRed, color.Bold).Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), underline)
}
