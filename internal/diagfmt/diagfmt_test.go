package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sift/internal/diag"
	"sift/internal/source"
)

func fixture(t *testing.T) (*source.FileSet, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("input.ts", []byte("let foo = 0; var bar = 1;\n"))

	bag := diag.NewBag(2)
	bag.Add(diag.NewWarning("no-var", source.Span{File: id, Start: 13, End: 25}, "`var` keyword is not allowed."))
	return fs, bag
}

func TestPretty_PlainLayout(t *testing.T) {
	fs, bag := fixture(t)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true})
	out := buf.String()

	if !strings.Contains(out, "input.ts:1:14: warning[no-var]: `var` keyword is not allowed.") {
		t.Errorf("header line wrong:\n%s", out)
	}
	if !strings.Contains(out, "let foo = 0; var bar = 1;") {
		t.Errorf("source line missing:\n%s", out)
	}
	if !strings.Contains(out, "^~~~~~~~~~~") {
		t.Errorf("caret underline missing:\n%s", out)
	}
}

func TestPretty_UnderlineAlignment(t *testing.T) {
	fs, bag := fixture(t)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true})

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("want 3 output lines, got %q", lines)
	}
	srcLine, caretLine := lines[1], lines[2]
	caretAt := strings.Index(caretLine, "^")
	varAt := strings.Index(srcLine, "var")
	if caretAt != varAt {
		t.Errorf("caret at %d, var at %d:\n%s", caretAt, varAt, buf.String())
	}
}

func TestPretty_MaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("input.ts", []byte("var a = 1; var b = 2;\n"))
	bag := diag.NewBag(2)
	bag.Add(diag.NewWarning("no-var", source.Span{File: id, Start: 0, End: 10}, "m"))
	bag.Add(diag.NewWarning("no-var", source.Span{File: id, Start: 11, End: 21}, "m"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Max: 1})
	out := buf.String()

	if strings.Count(out, "no-var") != 1 {
		t.Errorf("want one diagnostic:\n%s", out)
	}
	if !strings.Contains(out, "1 more diagnostic") {
		t.Errorf("truncation notice missing:\n%s", out)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	fs, bag := fixture(t)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diags = %d", out.Count, len(out.Diagnostics))
	}

	d := out.Diagnostics[0]
	if d.Severity != "warning" || d.Code != "no-var" {
		t.Errorf("diag = %+v", d)
	}
	if d.Location.StartByte != 13 || d.Location.EndByte != 25 {
		t.Errorf("bytes = %d..%d, want 13..25", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 14 {
		t.Errorf("pos = %d:%d, want 1:14", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSON_PositionsOmittedByDefault(t *testing.T) {
	fs, bag := fixture(t)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if strings.Contains(buf.String(), "start_line") {
		t.Errorf("positions should be omitted:\n%s", buf.String())
	}
}
